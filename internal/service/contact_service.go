package service

import (
	"context"
	"fmt"

	"constructsite/internal/config"
	"constructsite/internal/mailer"
	"constructsite/internal/repository"
)

type ContactService interface {
	// Send relays a contact-form submission: a notification to the company
	// inbox and an auto-reply to the submitter. Both are awaited; either
	// failure fails the request.
	Send(ctx context.Context, req repository.ContactRequest) error
}

type contactService struct {
	mailer mailer.Mailer
	cfg    *config.Config
}

func NewContactService(m mailer.Mailer, cfg *config.Config) ContactService {
	return &contactService{mailer: m, cfg: cfg}
}

func (s *contactService) Send(ctx context.Context, req repository.ContactRequest) error {
	notification := mailer.ContactNotification(
		s.cfg.CompanyEmail, req.Name, req.Email, req.Phone, req.Subject, req.Message)
	if err := s.mailer.Send(ctx, notification); err != nil {
		return fmt.Errorf("%w: %v", ErrMailSend, err)
	}

	autoReply := mailer.ContactAutoReply(req.Email, req.Name, req.Subject, req.Message)
	if err := s.mailer.Send(ctx, autoReply); err != nil {
		return fmt.Errorf("%w: %v", ErrMailSend, err)
	}

	return nil
}
