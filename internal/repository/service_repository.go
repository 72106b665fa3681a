package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"constructsite/internal/models"
)

type serviceRepository struct {
	db *sqlx.DB
}

func NewServiceRepository(db *sqlx.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

// serviceRow joins the owning account onto the record; the owner columns
// are nullable because the account may have been removed.
type serviceRow struct {
	models.Service
	OwnerID    *string `db:"owner_id"`
	OwnerName  *string `db:"owner_name"`
	OwnerEmail *string `db:"owner_email"`
}

func (row *serviceRow) toModel() *models.Service {
	svc := row.Service
	if row.OwnerID != nil {
		svc.CreatedBy = &models.Owner{
			ID:    *row.OwnerID,
			Name:  *row.OwnerName,
			Email: *row.OwnerEmail,
		}
	}
	return &svc
}

const serviceSelect = `
		SELECT s.id, s.title, s.description, s.image, s.images, s.detail_description,
		       s.is_active, s.created_by, s.created_at, s.updated_at,
		       u.id AS owner_id, u.name AS owner_name, u.email AS owner_email
		FROM services s
		LEFT JOIN users u ON u.id = s.created_by`

func (r *serviceRepository) Create(ctx context.Context, svc *models.Service) error {
	now := time.Now().UTC()
	svc.ID = uuid.New().String()
	svc.IsActive = true
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if svc.Images == nil {
		svc.Images = []string{}
	}

	query := `
		INSERT INTO services (id, title, description, image, images, detail_description,
		                      is_active, created_by, created_at, updated_at)
		VALUES (:id, :title, :description, :image, :images, :detail_description,
		        :is_active, :created_by, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, svc); err != nil {
		return fmt.Errorf("creating service: %w", err)
	}

	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return r.get(ctx, id, false)
}

func (r *serviceRepository) GetAny(ctx context.Context, id string) (*models.Service, error) {
	return r.get(ctx, id, true)
}

func (r *serviceRepository) get(ctx context.Context, id string, includeInactive bool) (*models.Service, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	query := serviceSelect + ` WHERE s.id = $1`
	if !includeInactive {
		query += ` AND s.is_active = TRUE`
	}

	var row serviceRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching service: %w", err)
	}

	return row.toModel(), nil
}

func (r *serviceRepository) List(ctx context.Context, filter ListFilter) ([]*models.Service, error) {
	offset := filter.Offset()

	var (
		rows []serviceRow
		err  error
	)
	if filter.Search != "" {
		query := serviceSelect + `
		WHERE s.is_active = TRUE
		  AND to_tsvector('english', s.title || ' ' || s.description) @@ plainto_tsquery('english', $1)
		ORDER BY s.created_at DESC LIMIT $2 OFFSET $3`
		err = r.db.SelectContext(ctx, &rows, query, filter.Search, filter.Limit, offset)
	} else {
		query := serviceSelect + `
		WHERE s.is_active = TRUE
		ORDER BY s.created_at DESC LIMIT $1 OFFSET $2`
		err = r.db.SelectContext(ctx, &rows, query, filter.Limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("listing services: %w", err)
	}

	services := make([]*models.Service, 0, len(rows))
	for i := range rows {
		services = append(services, rows[i].toModel())
	}

	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, svc *models.Service) error {
	svc.UpdatedAt = time.Now().UTC()
	if svc.Images == nil {
		svc.Images = []string{}
	}

	query := `
		UPDATE services
		SET title = :title, description = :description, image = :image,
		    images = :images, detail_description = :detail_description,
		    updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, svc)
	if err != nil {
		return fmt.Errorf("updating service: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *serviceRepository) SoftDelete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	query := `UPDATE services SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting service: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}

	return nil
}
