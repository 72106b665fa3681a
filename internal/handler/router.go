package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"constructsite/internal/middleware"
	"constructsite/internal/ratelimit"
	"constructsite/internal/storage"
)

// NewRouter wires every API route. Public content reads stay open,
// everything that mutates state sits behind the auth middleware.
func NewRouter(h *Handlers, limiter ratelimit.Store) *mux.Router {
	r := mux.NewRouter()

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "Route not found", http.StatusNotFound)
	})

	auth := middleware.Auth(h.AuthService, h.UserRepo)
	otpLimit := middleware.RateLimit(limiter)

	r.HandleFunc("/api/health", h.Health).Methods(http.MethodGet)

	// Auth. OTP endpoints share one rate limit bucket per client IP.
	r.Handle("/api/auth/request-otp", otpLimit(http.HandlerFunc(h.RequestOTP))).Methods(http.MethodPost)
	r.Handle("/api/auth/verify-otp", otpLimit(http.HandlerFunc(h.VerifyOTP))).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/register", h.Register).Methods(http.MethodPost)
	r.Handle("/api/auth/me", auth(http.HandlerFunc(h.Me))).Methods(http.MethodGet)

	// Services.
	r.HandleFunc("/api/services", h.ListServices).Methods(http.MethodGet)
	r.HandleFunc("/api/services/{id}", h.GetService).Methods(http.MethodGet)
	r.Handle("/api/services", auth(http.HandlerFunc(h.CreateService))).Methods(http.MethodPost)
	r.Handle("/api/services/{id}", auth(http.HandlerFunc(h.UpdateService))).Methods(http.MethodPut)
	r.Handle("/api/services/{id}", auth(http.HandlerFunc(h.DeleteService))).Methods(http.MethodDelete)

	// Projects. The categories route must be registered before {id}.
	r.HandleFunc("/api/projects", h.ListProjects).Methods(http.MethodGet)
	r.HandleFunc("/api/projects/categories", h.ProjectCategories).Methods(http.MethodGet)
	r.HandleFunc("/api/projects/{id}", h.GetProject).Methods(http.MethodGet)
	r.Handle("/api/projects", auth(http.HandlerFunc(h.CreateProject))).Methods(http.MethodPost)
	r.Handle("/api/projects/{id}", auth(http.HandlerFunc(h.UpdateProject))).Methods(http.MethodPut)
	r.Handle("/api/projects/{id}", auth(http.HandlerFunc(h.DeleteProject))).Methods(http.MethodDelete)

	// Uploads.
	r.Handle("/api/upload/single", auth(http.HandlerFunc(h.UploadSingle))).Methods(http.MethodPost)
	r.Handle("/api/upload/multiple", auth(http.HandlerFunc(h.UploadMultiple))).Methods(http.MethodPost)
	r.Handle("/api/upload/{filename}", auth(http.HandlerFunc(h.DeleteUpload))).Methods(http.MethodDelete)

	// Contact form.
	r.HandleFunc("/api/contact", h.Contact).Methods(http.MethodPost)

	// Local uploads are served straight off the disk. MinIO serves its
	// own objects, so no route is needed for that backend.
	if local, ok := h.Storage.(*storage.LocalStorage); ok {
		fs := http.FileServer(http.Dir(local.Dir()))
		r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", fs)).Methods(http.MethodGet)
	}

	return r
}
