package services

import (
	"context"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
)

// ClientService defines operations for managing clients.
type ClientService interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)
	ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, error)
}
