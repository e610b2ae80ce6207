package dto

import (
	"time"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
)

// CreateProjectRequest defines the data needed to create a project.
type CreateProjectRequest struct {
	Name      string  `json:"name" binding:"required"`
	Address   *string `json:"address"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
	CreatedBy *int64  `json:"created_by"`
	CompanyID int64   `json:"company_id" binding:"required"`
	ClientID  int64   `json:"client_id" binding:"required"`
}

// ListProjectsParams defines query parameters for listing projects.
type ListProjectsParams struct {
	CompanyID *int64 `form:"company_id"`
	ClientID  *int64 `form:"client_id"`
	Query     string `form:"q"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	Status    *string   `json:"status"`
	Notes     *string   `json:"notes"`
	CreatedBy *int64    `json:"created_by"`
	CompanyID int64     `json:"company_id"`
	ClientID  int64     `json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		Status:    p.Status,
		Notes:     p.Notes,
		CreatedBy: p.CreatedBy,
		CompanyID: p.CompanyID,
		ClientID:  p.ClientID,
		CreatedAt: p.CreatedAt,
	}
}

// ToProjectResponses converts a slice of domain.Project to []ProjectResponse.
func ToProjectResponses(projects []domain.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = ToProjectResponse(&p)
	}
	return responses
}

// ToDomainProject converts a create request to a domain.Project.
func (r CreateProjectRequest) ToDomainProject() domain.Project {
	return domain.Project{
		Name:      r.Name,
		Address:   r.Address,
		Status:    r.Status,
		Notes:     r.Notes,
		CreatedBy: r.CreatedBy,
		CompanyID: r.CompanyID,
		ClientID:  r.ClientID,
	}
}
