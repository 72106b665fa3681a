package handlers

import (
	"github.com/go-playground/validator/v10"

	"constructsite/internal/config"
	"constructsite/internal/repository"
	"constructsite/internal/service"
	"constructsite/internal/storage"
)

type Handlers struct {
	AuthService    service.AuthService
	ContentService service.ContentService
	ContactService service.ContactService
	UserRepo       repository.UserRepository
	Storage        storage.Storage
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, store storage.Storage, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		ContentService: services.Content,
		ContactService: services.Contact,
		UserRepo:       repo.User,
		Storage:        store,
		Cfg:            cfg,
		Validate:       validator.New(),
	}
}
