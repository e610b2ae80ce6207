package pgsql

import (
	"context"
	"fmt"

	"github.com/invoicerhq/invoicer_backend/internal/apperrors"
	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	portsrepo "github.com/invoicerhq/invoicer_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

// CreateClient inserts a client. The company reference is enforced by the
// foreign key; a dangling company_id surfaces as a validation error.
func (r *PgxClientRepository) CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	query := `
		INSERT INTO clients (name, address, gst_percent, created_by, company_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		client.Name,
		client.Address,
		client.GSTPercent,
		client.CreatedBy,
		client.CompanyID,
	).Scan(&client.ID, &client.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("company %d does not exist: %w", client.CompanyID, apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &client, nil
}

// ListClients retrieves clients, newest first.
func (r *PgxClientRepository) ListClients(ctx context.Context, filter portsrepo.ClientListFilter) ([]domain.Client, error) {
	query := `
		SELECT id, name, address, gst_percent, created_by, company_id, created_at
		FROM clients
	`
	var clauses []string
	var args []any
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		clauses = append(clauses, fmt.Sprintf("company_id = $%d", len(args)))
	}
	if filter.Query != nil && *filter.Query != "" {
		args = append(args, "%"+*filter.Query+"%")
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	query += whereSQL(clauses) + " ORDER BY created_at DESC, id DESC"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying clients: %w", err)
	}
	defer rows.Close()

	result := []domain.Client{}
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Address,
			&client.GSTPercent,
			&client.CreatedBy,
			&client.CompanyID,
			&client.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning client row: %w", err)
		}
		result = append(result, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}

	return result, nil
}
