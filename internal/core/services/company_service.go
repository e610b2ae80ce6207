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

// companyService implements the CompanyService interface
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(repo portsrepo.CompanyRepository) portssvc.CompanyService {
	return &companyService{companyRepo: repo}
}

// Ensure companyService implements the CompanyService interface
var _ portssvc.CompanyService = (*companyService)(nil)

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	created, err := s.companyRepo.CreateCompany(ctx, req.ToDomainCompany())
	if err != nil {
		s.LogError(ctx, err, "Failed to create company", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	s.LogInfo(ctx, "Company created", slog.Int64("company_id", created.ID))
	return created, nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		// Not-found is an expected outcome, pass the sentinel through untouched
		return nil, err
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context, params dto.ListCompaniesParams) ([]domain.Company, error) {
	filter := portsrepo.CompanyListFilter{Skip: params.Skip, Limit: params.Limit}
	if params.Query != "" {
		filter.Query = &params.Query
	}
	companies, err := s.companyRepo.ListCompanies(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies")
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}
