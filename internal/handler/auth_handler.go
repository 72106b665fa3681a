package handlers

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"time"

	"constructsite/internal/middleware"
	"constructsite/internal/models"
	"constructsite/internal/repository"
	"constructsite/internal/service"
)

var otpPattern = regexp.MustCompile(`^[0-9]{6}$`)

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func userResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RequestOTP issues a login code for the configured admin account. The
// code goes out by email; only its expiry is returned to the caller.
func (h *Handlers) RequestOTP(w http.ResponseWriter, r *http.Request) {
	otpExpires, err := h.AuthService.RequestOTP(r.Context())
	if err != nil {
		h.writeAuthError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "OTP sent to admin email address",
		"otpExpires": otpExpires.Format(time.RFC3339),
	})
}

func (h *Handlers) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OTP string `json:"otp"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Exactly 6 digits, checked before any account lookup.
	if !otpPattern.MatchString(req.OTP) {
		writeError(w, "Invalid OTP format", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.VerifyOTP(r.Context(), req.OTP)
	if err != nil {
		h.writeAuthError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Token: token,
		User:  userResponse(user),
	})
}

// Register creates the admin account during initial setup. The route stays
// public but duplicate emails are rejected, so it is a no-op once the
// account exists.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req repository.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, "Invalid input data", err)
		return
	}

	user, token, err := h.AuthService.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			writeError(w, "User already exists", http.StatusBadRequest)
			return
		}
		log.Printf("Registration error: %v", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Token: token,
		User:  userResponse(user),
	})
}

// Me returns the account attached by the auth middleware.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		writeError(w, "Token is not valid", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": userResponse(user),
	})
}

func (h *Handlers) writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAdminNotConfigured):
		writeError(w, "Admin account not configured", http.StatusInternalServerError)
	case errors.Is(err, service.ErrAccountDeactivated):
		writeError(w, "Account is deactivated", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidOTP):
		writeError(w, "Invalid or expired OTP", http.StatusBadRequest)
	case errors.Is(err, service.ErrMailSend):
		log.Printf("OTP email error: %v", err)
		writeError(w, "Failed to send OTP email", http.StatusInternalServerError)
	default:
		log.Printf("Auth error: %v", err)
		writeError(w, "Server error", http.StatusInternalServerError)
	}
}
