package repositories

import (
	"context"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
)

// CompanyListFilter narrows company listings. Query is a case-insensitive
// name substring match.
type CompanyListFilter struct {
	Query *string
	Skip  int
	Limit int
}

// CompanyRepository defines persistence operations for companies.
type CompanyRepository interface {
	// CreateCompany inserts a company and returns it with server-assigned fields.
	CreateCompany(ctx context.Context, company domain.Company) (*domain.Company, error)

	// FindCompanyByID returns apperrors.ErrNotFound when no row matches.
	FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)

	// ListCompanies returns companies ordered by creation time descending.
	ListCompanies(ctx context.Context, filter CompanyListFilter) ([]domain.Company, error)
}
