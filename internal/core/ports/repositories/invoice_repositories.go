package repositories

import (
	"context"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
)

// InvoiceListFilter narrows invoice listings. CompanyID is resolved through
// the invoice's project since invoices carry no direct company reference.
type InvoiceListFilter struct {
	ClientID  *int64
	ProjectID *int64
	CompanyID *int64
	Status    *string
}

// InvoiceRepository defines persistence operations for invoices and the
// per-(company, year) sequence counter.
type InvoiceRepository interface {
	// CreateInvoice inserts the invoice and, in the same transaction, advances
	// the sequence counter for the invoice's company and counterYear to at
	// least sequence. A duplicate invoice number yields apperrors.ErrDuplicate;
	// the unique constraint is the final arbiter under concurrent allocation.
	CreateInvoice(ctx context.Context, invoice domain.Invoice, counterYear int, sequence int) (*domain.Invoice, error)

	// ListInvoices returns invoices ordered by issue date descending.
	ListInvoices(ctx context.Context, filter InvoiceListFilter) ([]domain.Invoice, error)

	// NextSequence peeks the next unused sequence for a company and calendar
	// year. It is a read-only projection: it reserves nothing, and returns 1
	// when no counter exists (including for unknown companies).
	NextSequence(ctx context.Context, companyID int64, year int) (int, error)
}
