package service

import (
	"constructsite/internal/config"
	"constructsite/internal/mailer"
	"constructsite/internal/repository"
)

type Service struct {
	Auth    AuthService
	Content ContentService
	Contact ContactService
}

func NewService(repo *repository.Repository, cfg *config.Config, m mailer.Mailer) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, m, cfg),
		Content: NewContentService(repo.Service, repo.Project),
		Contact: NewContactService(m, cfg),
	}
}
