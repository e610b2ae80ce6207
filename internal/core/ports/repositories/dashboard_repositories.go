package repositories

import (
	"context"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardRepository defines the read-side queries behind the dashboard
// summary and export. All methods apply the same filter semantics: date
// bounds inclusive, company resolved via the project join for invoices and
// directly for payments.
type DashboardRepository interface {
	// GetInvoiceTotals returns the count of matching invoices and the exact
	// decimal sum of their totals (zero, never null, when nothing matches).
	GetInvoiceTotals(ctx context.Context, filter domain.DashboardFilter) (int64, decimal.Decimal, error)

	// GetPaymentTotals returns the exact decimal sum of matching payment
	// amounts (zero when nothing matches).
	GetPaymentTotals(ctx context.Context, filter domain.DashboardFilter) (decimal.Decimal, error)

	// ListFilteredInvoices returns matching invoices ordered by issue date
	// descending, ties broken by id descending. A limit of 0 means unbounded.
	ListFilteredInvoices(ctx context.Context, filter domain.DashboardFilter, limit int) ([]domain.Invoice, error)

	// ListFilteredPayments returns matching payments ordered by payment date
	// descending, ties broken by id descending. A limit of 0 means unbounded.
	ListFilteredPayments(ctx context.Context, filter domain.DashboardFilter, limit int) ([]domain.Payment, error)
}
