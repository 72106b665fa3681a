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

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

type projectRow struct {
	models.Project
	OwnerID    *string `db:"owner_id"`
	OwnerName  *string `db:"owner_name"`
	OwnerEmail *string `db:"owner_email"`
}

func (row *projectRow) toModel() *models.Project {
	proj := row.Project
	if row.OwnerID != nil {
		proj.CreatedBy = &models.Owner{
			ID:    *row.OwnerID,
			Name:  *row.OwnerName,
			Email: *row.OwnerEmail,
		}
	}
	return &proj
}

const projectSelect = `
		SELECT p.id, p.title, p.description, p.category, p.status, p.location,
		       p.client, p.image, p.images, p.detail_description, p.start_date,
		       p.end_date, p.is_active, p.created_by, p.created_at, p.updated_at,
		       u.id AS owner_id, u.name AS owner_name, u.email AS owner_email
		FROM projects p
		LEFT JOIN users u ON u.id = p.created_by`

func (r *projectRepository) Create(ctx context.Context, proj *models.Project) error {
	now := time.Now().UTC()
	proj.ID = uuid.New().String()
	proj.IsActive = true
	proj.CreatedAt = now
	proj.UpdatedAt = now
	if proj.Images == nil {
		proj.Images = []string{}
	}
	if proj.Status == "" {
		proj.Status = models.StatusCompleted
	}
	if proj.StartDate.IsZero() {
		proj.StartDate = now
	}

	query := `
		INSERT INTO projects (id, title, description, category, status, location,
		                      client, image, images, detail_description, start_date,
		                      end_date, is_active, created_by, created_at, updated_at)
		VALUES (:id, :title, :description, :category, :status, :location,
		        :client, :image, :images, :detail_description, :start_date,
		        :end_date, :is_active, :created_by, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, proj); err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return r.get(ctx, id, false)
}

func (r *projectRepository) GetAny(ctx context.Context, id string) (*models.Project, error) {
	return r.get(ctx, id, true)
}

func (r *projectRepository) get(ctx context.Context, id string, includeInactive bool) (*models.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	query := projectSelect + ` WHERE p.id = $1`
	if !includeInactive {
		query += ` AND p.is_active = TRUE`
	}

	var row projectRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching project: %w", err)
	}

	return row.toModel(), nil
}

func (r *projectRepository) List(ctx context.Context, filter ListFilter) ([]*models.Project, error) {
	offset := filter.Offset()

	query := projectSelect + ` WHERE p.is_active = TRUE`
	var args []interface{}

	if filter.Search != "" {
		args = append(args, filter.Search)
		query += fmt.Sprintf(
			` AND to_tsvector('english', p.title || ' ' || p.description || ' ' || p.category) @@ plainto_tsquery('english', $%d)`,
			len(args))
	}
	if filter.Category != "" {
		args = append(args, "%"+filter.Category+"%")
		query += fmt.Sprintf(` AND p.category ILIKE $%d`, len(args))
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(` ORDER BY p.created_at DESC LIMIT $%d`, len(args))
	args = append(args, offset)
	query += fmt.Sprintf(` OFFSET $%d`, len(args))

	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	projects := make([]*models.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, rows[i].toModel())
	}

	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, proj *models.Project) error {
	proj.UpdatedAt = time.Now().UTC()
	if proj.Images == nil {
		proj.Images = []string{}
	}

	query := `
		UPDATE projects
		SET title = :title, description = :description, category = :category,
		    status = :status, location = :location, client = :client,
		    image = :image, images = :images, detail_description = :detail_description,
		    start_date = :start_date, end_date = :end_date, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, proj)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *projectRepository) SoftDelete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	query := `UPDATE projects SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *projectRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string

	query := `SELECT DISTINCT category FROM projects WHERE is_active = TRUE ORDER BY category`

	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	return categories, nil
}
