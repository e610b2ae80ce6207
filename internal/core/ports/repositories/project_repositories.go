package repositories

import (
	"context"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
)

// ProjectListFilter narrows project listings.
type ProjectListFilter struct {
	CompanyID *int64
	ClientID  *int64
	Query     *string
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project domain.Project) (*domain.Project, error)

	// ListProjects returns projects ordered by creation time descending.
	ListProjects(ctx context.Context, filter ProjectListFilter) ([]domain.Project, error)
}
