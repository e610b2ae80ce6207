package pgsql

import (
	"context"
	"fmt"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	portsrepo "github.com/invoicerhq/invoicer_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// dashboardRepository implements the DashboardRepository interface.
type dashboardRepository struct {
	BaseRepository
}

// newDashboardRepository creates a new dashboard repository.
func newDashboardRepository(pool *pgxpool.Pool) portsrepo.DashboardRepository {
	return &dashboardRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DashboardRepository = (*dashboardRepository)(nil)

// GetInvoiceTotals returns the matching invoice count and the exact sum of
// their totals. SUM runs over NUMERIC, so no floating point is involved;
// COALESCE keeps the empty case at zero rather than null.
func (r *dashboardRepository) GetInvoiceTotals(ctx context.Context, filter domain.DashboardFilter) (int64, decimal.Decimal, error) {
	clauses, args := invoiceFilterClauses(filter)
	query := "SELECT COUNT(*), COALESCE(SUM(i.total), 0) FROM invoices i" + whereSQL(clauses)

	var count int64
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count, &total); err != nil {
		return 0, decimal.Zero, fmt.Errorf("error querying invoice totals: %w", err)
	}
	return count, total, nil
}

// GetPaymentTotals returns the exact sum of matching payment amounts.
func (r *dashboardRepository) GetPaymentTotals(ctx context.Context, filter domain.DashboardFilter) (decimal.Decimal, error) {
	clauses, args := paymentFilterClauses(filter)
	query := "SELECT COALESCE(SUM(p.amount), 0) FROM payments p" + whereSQL(clauses)

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error querying payment totals: %w", err)
	}
	return total, nil
}

// ListFilteredInvoices returns matching invoices newest first, ties broken by
// id descending so "recent" lists are deterministic.
func (r *dashboardRepository) ListFilteredInvoices(ctx context.Context, filter domain.DashboardFilter, limit int) ([]domain.Invoice, error) {
	clauses, args := invoiceFilterClauses(filter)
	query := "SELECT " + invoiceColumnsAliased("i") + " FROM invoices i" + whereSQL(clauses) +
		" ORDER BY i.issue_date DESC, i.id DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying filtered invoices: %w", err)
	}
	defer rows.Close()

	return scanInvoiceRows(rows)
}

// ListFilteredPayments returns matching payments newest first, same
// tie-break as invoices.
func (r *dashboardRepository) ListFilteredPayments(ctx context.Context, filter domain.DashboardFilter, limit int) ([]domain.Payment, error) {
	clauses, args := paymentFilterClauses(filter)
	query := "SELECT " + paymentColumnsAliased("p") + " FROM payments p" + whereSQL(clauses) +
		" ORDER BY p.payment_date DESC, p.id DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying filtered payments: %w", err)
	}
	defer rows.Close()

	return scanPaymentRows(rows)
}
