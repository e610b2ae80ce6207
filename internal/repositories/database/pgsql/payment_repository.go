package pgsql

import (
	"context"
	"fmt"

	"github.com/invoicerhq/invoicer_backend/internal/apperrors"
	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	portsrepo "github.com/invoicerhq/invoicer_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

// CreatePayment inserts a payment. payment_number carries a unique
// constraint; a collision maps to ErrDuplicate.
func (r *PgxPaymentRepository) CreatePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (payment_number, invoice_id, project_id, client_id, company_id, amount, payment_date, method, bank, transaction_no, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		payment.PaymentNumber,
		payment.InvoiceID,
		payment.ProjectID,
		payment.ClientID,
		payment.CompanyID,
		payment.Amount,
		payment.PaymentDate,
		payment.Method,
		payment.Bank,
		payment.TransactionNo,
		payment.Notes,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("payment number %s: %w", payment.PaymentNumber, apperrors.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("payment references a missing row: %w", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return &payment, nil
}

// ListPayments retrieves payments ordered by payment date descending.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, filter portsrepo.PaymentListFilter) ([]domain.Payment, error) {
	query := "SELECT " + paymentColumnsAliased("p") + " FROM payments p"
	var clauses []string
	var args []any
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		clauses = append(clauses, fmt.Sprintf("p.company_id = $%d", len(args)))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		clauses = append(clauses, fmt.Sprintf("p.client_id = $%d", len(args)))
	}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		clauses = append(clauses, fmt.Sprintf("p.project_id = $%d", len(args)))
	}
	query += whereSQL(clauses) + " ORDER BY p.payment_date DESC, p.id DESC"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	return scanPaymentRows(rows)
}

// paymentColumnsAliased prefixes the payment column list with a table alias.
func paymentColumnsAliased(alias string) string {
	return alias + ".id, " + alias + ".payment_number, " + alias + ".invoice_id, " + alias + ".project_id, " +
		alias + ".client_id, " + alias + ".company_id, " + alias + ".amount, " + alias + ".payment_date, " +
		alias + ".method, " + alias + ".bank, " + alias + ".transaction_no, " + alias + ".notes, " + alias + ".created_at"
}

// scanPaymentRows drains a result set whose columns match the payment list.
func scanPaymentRows(rows pgx.Rows) ([]domain.Payment, error) {
	result := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(
			&p.ID,
			&p.PaymentNumber,
			&p.InvoiceID,
			&p.ProjectID,
			&p.ClientID,
			&p.CompanyID,
			&p.Amount,
			&p.PaymentDate,
			&p.Method,
			&p.Bank,
			&p.TransactionNo,
			&p.Notes,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return result, nil
}
