package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
)

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// validateImage checks extension and declared content type before anything
// touches the storage backend.
func validateImage(header *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		return fmt.Errorf("disallowed extension %q", ext)
	}
	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		return fmt.Errorf("disallowed content type %q", header.Header.Get("Content-Type"))
	}
	return nil
}

func (h *Handlers) UploadSingle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.Upload.MaxFileSize+1024*1024)

	if err := r.ParseMultipartForm(h.Cfg.Upload.MaxFileSize); err != nil {
		writeError(w, "File size too large. Maximum 5MB allowed", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > h.Cfg.Upload.MaxFileSize {
		writeError(w, "File size too large. Maximum 5MB allowed", http.StatusBadRequest)
		return
	}

	if err := validateImage(header); err != nil {
		writeError(w, "Only PNG, JPG, and JPEG files are allowed", http.StatusBadRequest)
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename, url, err := h.Storage.Save(r.Context(), "image", ext, header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		log.Printf("Upload error: %v", err)
		writeError(w, "File upload failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":  "File uploaded successfully",
		"url":      url,
		"filename": filename,
	})
}

func (h *Handlers) UploadMultiple(w http.ResponseWriter, r *http.Request) {
	maxTotal := h.Cfg.Upload.MaxFileSize * int64(h.Cfg.Upload.MaxFiles)
	r.Body = http.MaxBytesReader(w, r.Body, maxTotal+1024*1024)

	if err := r.ParseMultipartForm(maxTotal); err != nil {
		writeError(w, "One or more files are too large. Maximum 5MB per file allowed", http.StatusBadRequest)
		return
	}

	if r.MultipartForm == nil {
		writeError(w, "No files uploaded", http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 {
		writeError(w, "No files uploaded", http.StatusBadRequest)
		return
	}
	if len(headers) > h.Cfg.Upload.MaxFiles {
		writeError(w, "Too many files. Maximum 10 files allowed", http.StatusBadRequest)
		return
	}

	// Reject the whole batch before writing anything.
	for _, header := range headers {
		if header.Size > h.Cfg.Upload.MaxFileSize {
			writeError(w, "One or more files are too large. Maximum 5MB per file allowed", http.StatusBadRequest)
			return
		}
		if err := validateImage(header); err != nil {
			writeError(w, "Only PNG, JPG, and JPEG files are allowed", http.StatusBadRequest)
			return
		}
	}

	urls := make([]string, 0, len(headers))
	filenames := make([]string, 0, len(headers))

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			log.Printf("Upload error: %v", err)
			writeError(w, "File upload failed", http.StatusInternalServerError)
			return
		}

		ext := strings.ToLower(filepath.Ext(header.Filename))
		filename, url, err := h.Storage.Save(r.Context(), "images", ext, header.Header.Get("Content-Type"), file, header.Size)
		file.Close()
		if err != nil {
			log.Printf("Upload error: %v", err)
			writeError(w, "File upload failed", http.StatusInternalServerError)
			return
		}

		urls = append(urls, url)
		filenames = append(filenames, filename)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Files uploaded successfully",
		"urls":      urls,
		"filenames": filenames,
	})
}

func (h *Handlers) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]

	if filename == "" || strings.Contains(filename, "..") ||
		strings.ContainsAny(filename, "/\\") {
		writeError(w, "Invalid filename", http.StatusBadRequest)
		return
	}

	removed, err := h.Storage.Delete(r.Context(), filename)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			writeError(w, "Permission denied: Cannot delete file", http.StatusForbidden)
			return
		}
		log.Printf("Delete upload error: %v", err)
		writeError(w, "File deletion failed", http.StatusInternalServerError)
		return
	}

	message := "File deleted successfully"
	if !removed {
		message = "File removed (was already deleted)"
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":  message,
		"filename": filename,
	})
}
