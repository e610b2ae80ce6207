package dto

import (
	"time"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to create a company.
type CreateCompanyRequest struct {
	Name       string  `json:"name" binding:"required"`
	Address    *string `json:"address"`
	GSTPercent *int    `json:"gst_percent" binding:"omitempty,gte=0,lte=100"`
	CreatedBy  *int64  `json:"created_by"`
}

// ListCompaniesParams defines query parameters for listing companies.
type ListCompaniesParams struct {
	Query string `form:"q"`
	Skip  int    `form:"skip,default=0"`
	Limit int    `form:"limit,default=100"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Address    *string   `json:"address"`
	GSTPercent *int      `json:"gst_percent"`
	CreatedBy  *int64    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:         c.ID,
		Name:       c.Name,
		Address:    c.Address,
		GSTPercent: c.GSTPercent,
		CreatedBy:  c.CreatedBy,
		CreatedAt:  c.CreatedAt,
	}
}

// ToCompanyResponses converts a slice of domain.Company to []CompanyResponse.
func ToCompanyResponses(companies []domain.Company) []CompanyResponse {
	responses := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		responses[i] = ToCompanyResponse(&c)
	}
	return responses
}

// ToDomainCompany converts a create request to a domain.Company.
func (r CreateCompanyRequest) ToDomainCompany() domain.Company {
	return domain.Company{
		Name:       r.Name,
		Address:    r.Address,
		GSTPercent: r.GSTPercent,
		CreatedBy:  r.CreatedBy,
	}
}
