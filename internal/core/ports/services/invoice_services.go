package services

import (
	"context"
	"time"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
)

// InvoiceService defines operations for managing invoices and sequence
// allocation.
type InvoiceService interface {
	// CreateInvoice stores an invoice whose number the caller already computed
	// via NextInvoiceSequence. A colliding number (lost sequencer race) yields
	// apperrors.ErrDuplicate; the caller re-requests a sequence and retries.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error)

	// NextInvoiceSequence returns the next unused sequence for the company in
	// issueDate's calendar year. Read-only; reserves nothing.
	NextInvoiceSequence(ctx context.Context, companyID int64, issueDate time.Time) (int, error)
}
