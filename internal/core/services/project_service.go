package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	portsrepo "github.com/invoicerhq/invoicer_backend/internal/core/ports/repositories"
	portssvc "github.com/invoicerhq/invoicer_backend/internal/core/ports/services"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
)

// projectService implements the ProjectService interface
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(repo portsrepo.ProjectRepository) portssvc.ProjectService {
	return &projectService{projectRepo: repo}
}

// Ensure projectService implements the ProjectService interface
var _ portssvc.ProjectService = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	created, err := s.projectRepo.CreateProject(ctx, req.ToDomainProject())
	if err != nil {
		s.LogError(ctx, err, "Failed to create project",
			slog.Int64("company_id", req.CompanyID),
			slog.Int64("client_id", req.ClientID))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.LogInfo(ctx, "Project created", slog.Int64("project_id", created.ID))
	return created, nil
}

func (s *projectService) ListProjects(ctx context.Context, params dto.ListProjectsParams) ([]domain.Project, error) {
	filter := portsrepo.ProjectListFilter{
		CompanyID: params.CompanyID,
		ClientID:  params.ClientID,
	}
	if params.Query != "" {
		filter.Query = &params.Query
	}
	projects, err := s.projectRepo.ListProjects(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}
