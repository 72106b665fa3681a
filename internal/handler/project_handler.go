package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"constructsite/internal/middleware"
	"constructsite/internal/repository"
)

func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.ContentService.ListProjects(r.Context(), listFilter(r))
	if err != nil {
		log.Printf("Get projects error: %v", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *Handlers) GetProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	project, err := h.ContentService.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "Project not found", http.StatusNotFound)
			return
		}
		log.Printf("Get project error: %v", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *Handlers) ProjectCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.ContentService.ProjectCategories(r.Context())
	if err != nil {
		log.Printf("Get categories error: %v", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req repository.CreateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, "Invalid input data", err)
		return
	}

	user := middleware.UserFrom(r.Context())
	project, err := h.ContentService.CreateProject(r.Context(), user.ID, req)
	if err != nil {
		log.Printf("Create project error: %v", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

func (h *Handlers) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req repository.UpdateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, "Invalid input data", err)
		return
	}

	project, err := h.ContentService.UpdateProject(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "Project not found", http.StatusNotFound)
			return
		}
		log.Printf("Update project error: %v", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *Handlers) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.ContentService.DeleteProject(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, "Project not found", http.StatusNotFound)
			return
		}
		log.Printf("Delete project error: %v", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
