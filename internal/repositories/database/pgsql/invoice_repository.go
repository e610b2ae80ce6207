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

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

// CreateInvoice inserts the invoice and advances the per-(company, year)
// sequence counter in one transaction. The counter is advanced with GREATEST
// so concurrent inserts keep it monotone; the unique constraint on
// invoice_number decides the winner of a sequencer race.
func (r *PgxInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice, counterYear int, sequence int) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Invoices reference their company through the project.
	var companyID int64
	err = tx.QueryRow(ctx, `SELECT company_id FROM projects WHERE id = $1`, invoice.ProjectID).Scan(&companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("project %d does not exist: %w", invoice.ProjectID, apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to resolve company for project %d: %w", invoice.ProjectID, err)
	}

	insertQuery := `
		INSERT INTO invoices (invoice_number, client_id, project_id, issue_date, due_date, status, currency, subtotal, tax, total, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at;
	`
	err = tx.QueryRow(ctx, insertQuery,
		invoice.InvoiceNumber,
		invoice.ClientID,
		invoice.ProjectID,
		invoice.IssueDate,
		invoice.DueDate,
		invoice.Status,
		invoice.Currency,
		invoice.Subtotal,
		invoice.Tax,
		invoice.Total,
		invoice.Notes,
	).Scan(&invoice.ID, &invoice.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("invoice number %s: %w", invoice.InvoiceNumber, apperrors.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("client %d or project %d does not exist: %w", invoice.ClientID, invoice.ProjectID, apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	counterQuery := `
		INSERT INTO invoice_counters (company_id, year, last_sequence)
		VALUES ($1, $2, $3)
		ON CONFLICT (company_id, year) DO UPDATE SET
			last_sequence = GREATEST(invoice_counters.last_sequence, EXCLUDED.last_sequence);
	`
	if _, err := tx.Exec(ctx, counterQuery, companyID, counterYear, sequence); err != nil {
		return nil, fmt.Errorf("failed to advance invoice counter for company %d year %d: %w", companyID, counterYear, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// ListInvoices retrieves invoices ordered by issue date descending.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.Invoice, error) {
	query := "SELECT " + invoiceColumnsAliased("i") + " FROM invoices i"
	var clauses []string
	var args []any
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		clauses = append(clauses, fmt.Sprintf("i.client_id = $%d", len(args)))
	}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		clauses = append(clauses, fmt.Sprintf("i.project_id = $%d", len(args)))
	}
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		clauses = append(clauses, fmt.Sprintf("EXISTS (SELECT 1 FROM projects p WHERE p.id = i.project_id AND p.company_id = $%d)", len(args)))
	}
	if filter.Status != nil && *filter.Status != "" {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("i.status = $%d", len(args)))
	}
	query += whereSQL(clauses) + " ORDER BY i.issue_date DESC, i.id DESC"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying invoices: %w", err)
	}
	defer rows.Close()

	return scanInvoiceRows(rows)
}

// NextSequence peeks the next unused sequence for a company and year. No
// counter row (unknown company included) means the base case 1.
func (r *PgxInvoiceRepository) NextSequence(ctx context.Context, companyID int64, year int) (int, error) {
	query := `
		SELECT last_sequence + 1
		FROM invoice_counters
		WHERE company_id = $1 AND year = $2;
	`
	var next int
	err := r.Pool.QueryRow(ctx, query, companyID, year).Scan(&next)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to read invoice counter for company %d year %d: %w", companyID, year, err)
	}
	return next, nil
}

// invoiceColumnsAliased prefixes the invoice column list with a table alias.
func invoiceColumnsAliased(alias string) string {
	return alias + ".id, " + alias + ".invoice_number, " + alias + ".client_id, " + alias + ".project_id, " +
		alias + ".issue_date, " + alias + ".due_date, " + alias + ".status, " + alias + ".currency, " +
		alias + ".subtotal, " + alias + ".tax, " + alias + ".total, " + alias + ".notes, " + alias + ".created_at"
}

// scanInvoiceRows drains a result set whose columns match the invoice list.
func scanInvoiceRows(rows pgx.Rows) ([]domain.Invoice, error) {
	result := []domain.Invoice{}
	for rows.Next() {
		var inv domain.Invoice
		if err := rows.Scan(
			&inv.ID,
			&inv.InvoiceNumber,
			&inv.ClientID,
			&inv.ProjectID,
			&inv.IssueDate,
			&inv.DueDate,
			&inv.Status,
			&inv.Currency,
			&inv.Subtotal,
			&inv.Tax,
			&inv.Total,
			&inv.Notes,
			&inv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning invoice row: %w", err)
		}
		result = append(result, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return result, nil
}
