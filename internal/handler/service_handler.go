package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"constructsite/internal/middleware"
	"constructsite/internal/repository"
)

// listFilter reads the shared pagination/search query parameters.
func listFilter(r *http.Request) repository.ListFilter {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	return repository.ListFilter{
		Page:     page,
		Limit:    limit,
		Search:   query.Get("search"),
		Category: query.Get("category"),
	}
}

func (h *Handlers) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.ContentService.ListServices(r.Context(), listFilter(r))
	if err != nil {
		log.Printf("Get services error: %v", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, services)
}

func (h *Handlers) GetService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	svc, err := h.ContentService.GetService(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "Service not found", http.StatusNotFound)
			return
		}
		log.Printf("Get service error: %v", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, svc)
}

func (h *Handlers) CreateService(w http.ResponseWriter, r *http.Request) {
	var req repository.CreateServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, "Invalid input data", err)
		return
	}

	user := middleware.UserFrom(r.Context())
	svc, err := h.ContentService.CreateService(r.Context(), user.ID, req)
	if err != nil {
		log.Printf("Create service error: %v", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, svc)
}

func (h *Handlers) UpdateService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req repository.UpdateServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, "Invalid input data", err)
		return
	}

	svc, err := h.ContentService.UpdateService(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "Service not found", http.StatusNotFound)
			return
		}
		log.Printf("Update service error: %v", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, svc)
}

func (h *Handlers) DeleteService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.ContentService.DeleteService(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "Service not found", http.StatusNotFound)
			return
		}
		log.Printf("Delete service error: %v", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Service deleted successfully"})
}
