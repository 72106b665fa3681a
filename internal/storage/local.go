package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Save(ctx context.Context, field, ext, contentType string, file io.Reader, size int64) (string, string, error) {
	filename := generateFilename(field, ext)
	path := filepath.Join(s.dir, filename)

	// O_EXCL backs up the timestamp+random naming scheme: a collision
	// fails instead of silently overwriting another upload.
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("writing upload file: %w", err)
	}

	return filename, "/uploads/" + filename, nil
}

func (s *LocalStorage) Delete(ctx context.Context, filename string) (bool, error) {
	path := filepath.Join(s.dir, filename)

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("deleting upload file: %w", err)
	}

	return true, nil
}

// Dir returns the uploads directory for static file serving.
func (s *LocalStorage) Dir() string {
	return s.dir
}
