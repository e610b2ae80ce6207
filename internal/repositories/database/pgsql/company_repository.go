package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/invoicerhq/invoicer_backend/internal/apperrors"
	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	portsrepo "github.com/invoicerhq/invoicer_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepository {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CompanyRepository = (*PgxCompanyRepository)(nil)

// CreateCompany inserts a company and returns it with the server-assigned
// id and created_at.
func (r *PgxCompanyRepository) CreateCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	query := `
		INSERT INTO companies (name, address, gst_percent, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		company.Name,
		company.Address,
		company.GSTPercent,
		company.CreatedBy,
	).Scan(&company.ID, &company.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return &company, nil
}

// FindCompanyByID retrieves a company by its identifier.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	query := `
		SELECT id, name, address, gst_percent, created_by, created_at
		FROM companies
		WHERE id = $1;
	`
	var company domain.Company
	err := r.Pool.QueryRow(ctx, query, companyID).Scan(
		&company.ID,
		&company.Name,
		&company.Address,
		&company.GSTPercent,
		&company.CreatedBy,
		&company.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company %d: %w", companyID, err)
	}
	return &company, nil
}

// ListCompanies retrieves companies, optionally narrowed by a name search,
// newest first.
func (r *PgxCompanyRepository) ListCompanies(ctx context.Context, filter portsrepo.CompanyListFilter) ([]domain.Company, error) {
	query := `
		SELECT id, name, address, gst_percent, created_by, created_at
		FROM companies
	`
	var args []any
	if filter.Query != nil && *filter.Query != "" {
		args = append(args, "%"+*filter.Query+"%")
		query += fmt.Sprintf(" WHERE name ILIKE $%d", len(args))
	}
	query += " ORDER BY created_at DESC, id DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Skip)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying companies: %w", err)
	}
	defer rows.Close()

	result := []domain.Company{}
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.Address,
			&company.GSTPercent,
			&company.CreatedBy,
			&company.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning company row: %w", err)
		}
		result = append(result, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}

	return result, nil
}
