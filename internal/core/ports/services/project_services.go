package services

import (
	"context"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
)

// ProjectService defines operations for managing projects.
type ProjectService interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
	ListProjects(ctx context.Context, params dto.ListProjectsParams) ([]domain.Project, error)
}
