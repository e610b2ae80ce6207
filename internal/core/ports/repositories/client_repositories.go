package repositories

import (
	"context"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
)

// ClientListFilter narrows client listings.
type ClientListFilter struct {
	CompanyID *int64
	Query     *string
}

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error)

	// ListClients returns clients ordered by creation time descending.
	ListClients(ctx context.Context, filter ClientListFilter) ([]domain.Client, error)
}
