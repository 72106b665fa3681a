package app

import (
	"log"

	"constructsite/internal/config"
	"constructsite/internal/database"
	"constructsite/internal/mailer"
	"constructsite/internal/repository"
	"constructsite/internal/service"
	"constructsite/internal/storage"
)

// App connects every external dependency and assembles the service layer.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, storage.Storage) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	m, err := mailer.NewSMTPMailer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize mailer: %v", err)
	}

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, m)

	return db, repo, services, store
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.Upload.Backend == "minio" {
		return storage.NewMinIOStorage(cfg)
	}
	return storage.NewLocalStorage(cfg.Upload.Dir)
}
