package handlers

import (
	"log"
	"net/http"

	"constructsite/internal/repository"
)

func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	var req repository.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, "Please provide all required fields: name, email, subject, and message", err)
		return
	}

	if err := h.ContactService.Send(r.Context(), req); err != nil {
		log.Printf("Contact form error: %v", err)
		writeError(w, "Failed to send message. Please try again later.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Message sent successfully! We will get back to you soon.",
	})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Construction Firm API is running!"})
}
