package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"constructsite/internal/models"
)

var (
	// ErrNotFound covers missing records and malformed ids alike; the API
	// reports both as 404.
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// ListFilter carries the query parameters of the public list endpoints.
type ListFilter struct {
	Page     int
	Limit    int
	Search   string
	Category string
}

// Offset clamps page/limit to sane values and returns the SQL offset.
func (f *ListFilter) Offset() int {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	return (f.Page - 1) * f.Limit
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User, password string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.User, error)
	SetOTP(ctx context.Context, id, otp string, expires time.Time) error
	ClearOTP(ctx context.Context, id string) error
}

type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	// GetByID returns an active record with its owner resolved.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// GetAny ignores the active flag; used by the admin update path.
	GetAny(ctx context.Context, id string) (*models.Service, error)
	List(ctx context.Context, filter ListFilter) ([]*models.Service, error)
	Update(ctx context.Context, svc *models.Service) error
	SoftDelete(ctx context.Context, id string) error
}

type ProjectRepository interface {
	Create(ctx context.Context, proj *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetAny(ctx context.Context, id string) (*models.Project, error)
	List(ctx context.Context, filter ListFilter) ([]*models.Project, error)
	Update(ctx context.Context, proj *models.Project) error
	SoftDelete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
}

type Repository struct {
	User    UserRepository
	Service ServiceRepository
	Project ProjectRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Service: NewServiceRepository(db),
		Project: NewProjectRepository(db),
	}
}
