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

// clientService implements the ClientService interface
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(repo portsrepo.ClientRepository) portssvc.ClientService {
	return &clientService{clientRepo: repo}
}

// Ensure clientService implements the ClientService interface
var _ portssvc.ClientService = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	created, err := s.clientRepo.CreateClient(ctx, req.ToDomainClient())
	if err != nil {
		s.LogError(ctx, err, "Failed to create client", slog.Int64("company_id", req.CompanyID))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.Int64("client_id", created.ID))
	return created, nil
}

func (s *clientService) ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, error) {
	filter := portsrepo.ClientListFilter{CompanyID: params.CompanyID}
	if params.Query != "" {
		filter.Query = &params.Query
	}
	clients, err := s.clientRepo.ListClients(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}
