package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/invoicerhq/invoicer_backend/internal/apperrors"
	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	portsrepo "github.com/invoicerhq/invoicer_backend/internal/core/ports/repositories"
	portssvc "github.com/invoicerhq/invoicer_backend/internal/core/ports/services"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
)

// invoiceService implements the InvoiceService interface
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(repo portsrepo.InvoiceRepository) portssvc.InvoiceService {
	return &invoiceService{invoiceRepo: repo}
}

// Ensure invoiceService implements the InvoiceService interface
var _ portssvc.InvoiceService = (*invoiceService)(nil)

// CreateInvoice validates the caller-supplied invoice number against the
// issue date and stores the invoice. The embedded sequence advances the
// per-(company, year) counter so a subsequent next-number call never hands
// out a number at or below it.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := req.ToDomainInvoice()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	yearSuffix, sequence, err := domain.ParseInvoiceNumber(invoice.InvoiceNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	counterYear := invoice.IssueDate.Year()
	if yearSuffix != counterYear%100 {
		return nil, fmt.Errorf("%w: invoice number year %02d does not match issue date year %d",
			apperrors.ErrValidation, yearSuffix, counterYear)
	}

	created, err := s.invoiceRepo.CreateInvoice(ctx, invoice, counterYear, sequence)
	if err != nil {
		s.LogError(ctx, err, "Failed to create invoice",
			slog.String("invoice_number", invoice.InvoiceNumber))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.Int64("invoice_id", created.ID),
		slog.String("invoice_number", created.InvoiceNumber))
	return created, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error) {
	filter := portsrepo.InvoiceListFilter{
		ClientID:  params.ClientID,
		ProjectID: params.ProjectID,
		CompanyID: params.CompanyID,
		Status:    params.Status,
	}
	invoices, err := s.invoiceRepo.ListInvoices(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// NextInvoiceSequence peeks the next sequence for the company in issueDate's
// calendar year. It reserves nothing: two concurrent callers may see the same
// value, and the invoice number's unique constraint decides the race at
// creation time.
func (s *invoiceService) NextInvoiceSequence(ctx context.Context, companyID int64, issueDate time.Time) (int, error) {
	sequence, err := s.invoiceRepo.NextSequence(ctx, companyID, issueDate.Year())
	if err != nil {
		s.LogError(ctx, err, "Failed to compute next invoice sequence",
			slog.Int64("company_id", companyID))
		return 0, fmt.Errorf("failed to compute next invoice sequence: %w", err)
	}
	return sequence, nil
}
