package services

import (
	"context"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
)

// CompanyService defines operations for managing companies.
type CompanyService interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)

	// GetCompanyByID returns apperrors.ErrNotFound when the company is missing.
	GetCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)

	ListCompanies(ctx context.Context, params dto.ListCompaniesParams) ([]domain.Company, error)
}
