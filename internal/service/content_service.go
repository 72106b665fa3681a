package service

import (
	"context"

	"constructsite/internal/models"
	"constructsite/internal/repository"
)

type ContentService interface {
	ListServices(ctx context.Context, filter repository.ListFilter) ([]*models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, ownerID string, req repository.CreateServiceRequest) (*models.Service, error)
	UpdateService(ctx context.Context, id string, req repository.UpdateServiceRequest) (*models.Service, error)
	DeleteService(ctx context.Context, id string) error

	ListProjects(ctx context.Context, filter repository.ListFilter) ([]*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	CreateProject(ctx context.Context, ownerID string, req repository.CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, req repository.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	ProjectCategories(ctx context.Context) ([]string, error)
}

type contentService struct {
	serviceRepo repository.ServiceRepository
	projectRepo repository.ProjectRepository
}

func NewContentService(serviceRepo repository.ServiceRepository, projectRepo repository.ProjectRepository) ContentService {
	return &contentService{
		serviceRepo: serviceRepo,
		projectRepo: projectRepo,
	}
}

func (s *contentService) ListServices(ctx context.Context, filter repository.ListFilter) ([]*models.Service, error) {
	return s.serviceRepo.List(ctx, filter)
}

func (s *contentService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.serviceRepo.GetByID(ctx, id)
}

func (s *contentService) CreateService(ctx context.Context, ownerID string, req repository.CreateServiceRequest) (*models.Service, error) {
	svc := &models.Service{
		Title:             req.Title,
		Description:       req.Description,
		Image:             req.Image,
		Images:            req.Images,
		DetailDescription: req.DetailDescription,
		CreatedByID:       ownerID,
	}

	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}

	// Re-read so the response carries the resolved owner.
	return s.serviceRepo.GetAny(ctx, svc.ID)
}

// UpdateService replaces the record with the request contents. Required
// fields are taken as-is; the primary image falls back to the stored value
// when empty, while the remaining optional fields keep their stored value
// only when omitted entirely.
func (s *contentService) UpdateService(ctx context.Context, id string, req repository.UpdateServiceRequest) (*models.Service, error) {
	svc, err := s.serviceRepo.GetAny(ctx, id)
	if err != nil {
		return nil, err
	}

	svc.Title = req.Title
	svc.Description = req.Description
	if req.Image != "" {
		svc.Image = req.Image
	}
	if req.DetailDescription != nil {
		svc.DetailDescription = *req.DetailDescription
	}
	if req.Images != nil {
		svc.Images = *req.Images
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	return s.serviceRepo.GetAny(ctx, id)
}

func (s *contentService) DeleteService(ctx context.Context, id string) error {
	return s.serviceRepo.SoftDelete(ctx, id)
}

func (s *contentService) ListProjects(ctx context.Context, filter repository.ListFilter) ([]*models.Project, error) {
	return s.projectRepo.List(ctx, filter)
}

func (s *contentService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *contentService) CreateProject(ctx context.Context, ownerID string, req repository.CreateProjectRequest) (*models.Project, error) {
	proj := &models.Project{
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Status:            req.Status,
		Location:          req.Location,
		Client:            req.Client,
		Image:             req.Image,
		Images:            req.Images,
		DetailDescription: req.DetailDescription,
		EndDate:           req.EndDate,
		CreatedByID:       ownerID,
	}
	if req.StartDate != nil {
		proj.StartDate = *req.StartDate
	}

	if err := s.projectRepo.Create(ctx, proj); err != nil {
		return nil, err
	}

	return s.projectRepo.GetAny(ctx, proj.ID)
}

func (s *contentService) UpdateProject(ctx context.Context, id string, req repository.UpdateProjectRequest) (*models.Project, error) {
	proj, err := s.projectRepo.GetAny(ctx, id)
	if err != nil {
		return nil, err
	}

	proj.Title = req.Title
	proj.Description = req.Description
	proj.Category = req.Category
	if req.Image != "" {
		proj.Image = req.Image
	}
	if req.DetailDescription != nil {
		proj.DetailDescription = *req.DetailDescription
	}
	if req.Location != nil {
		proj.Location = *req.Location
	}
	if req.Client != nil {
		proj.Client = *req.Client
	}
	if req.Images != nil {
		proj.Images = *req.Images
	}
	// Status and the date fields keep the stored value whenever the new
	// one is absent; an explicit end date can therefore never be cleared,
	// which the admin UI relies on.
	if req.Status != "" {
		proj.Status = req.Status
	}
	if req.StartDate != nil {
		proj.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		proj.EndDate = req.EndDate
	}

	if err := s.projectRepo.Update(ctx, proj); err != nil {
		return nil, err
	}

	return s.projectRepo.GetAny(ctx, id)
}

func (s *contentService) DeleteProject(ctx context.Context, id string) error {
	return s.projectRepo.SoftDelete(ctx, id)
}

func (s *contentService) ProjectCategories(ctx context.Context) ([]string, error) {
	return s.projectRepo.Categories(ctx)
}
