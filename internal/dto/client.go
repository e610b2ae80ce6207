package dto

import (
	"time"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a client.
type CreateClientRequest struct {
	Name       string  `json:"name" binding:"required"`
	Address    *string `json:"address"`
	GSTPercent *int    `json:"gst_percent" binding:"omitempty,gte=0,lte=100"`
	CreatedBy  *int64  `json:"created_by"`
	CompanyID  int64   `json:"company_id" binding:"required"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	CompanyID *int64 `form:"company_id"`
	Query     string `form:"q"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Address    *string   `json:"address"`
	GSTPercent *int      `json:"gst_percent"`
	CreatedBy  *int64    `json:"created_by"`
	CompanyID  int64     `json:"company_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Address:    c.Address,
		GSTPercent: c.GSTPercent,
		CreatedBy:  c.CreatedBy,
		CompanyID:  c.CompanyID,
		CreatedAt:  c.CreatedAt,
	}
}

// ToClientResponses converts a slice of domain.Client to []ClientResponse.
func ToClientResponses(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = ToClientResponse(&c)
	}
	return responses
}

// ToDomainClient converts a create request to a domain.Client.
func (r CreateClientRequest) ToDomainClient() domain.Client {
	return domain.Client{
		Name:       r.Name,
		Address:    r.Address,
		GSTPercent: r.GSTPercent,
		CreatedBy:  r.CreatedBy,
		CompanyID:  r.CompanyID,
	}
}
