package dto

import (
	"fmt"
	"time"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to create an invoice. The
// invoice number must already be computed by the caller (via next-number);
// the backend never auto-assigns it on creation.
type CreateInvoiceRequest struct {
	InvoiceNumber string          `json:"invoice_number" binding:"required"`
	ClientID      int64           `json:"client_id" binding:"required"`
	ProjectID     int64           `json:"project_id" binding:"required"`
	IssueDate     string          `json:"issue_date" binding:"required,dateonly"`
	DueDate       *string         `json:"due_date" binding:"omitempty,dateonly"`
	Status        string          `json:"status" binding:"required"`
	Currency      string          `json:"currency" binding:"required"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Notes         *string         `json:"notes"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	ClientID  *int64  `form:"client_id"`
	ProjectID *int64  `form:"project_id"`
	CompanyID *int64  `form:"company_id"`
	Status    *string `form:"status"`
}

// NextNumberResponse is the payload of the next-number endpoint.
type NextNumberResponse struct {
	NextSequence int `json:"next_sequence"`
}

// InvoiceResponse defines the data returned for an invoice. Monetary values
// are converted to plain numbers at this boundary only; everything upstream
// stays decimal.
type InvoiceResponse struct {
	ID            int64     `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	ClientID      int64     `json:"client_id"`
	ProjectID     int64     `json:"project_id"`
	IssueDate     string    `json:"issue_date"`
	DueDate       *string   `json:"due_date"`
	Status        string    `json:"status"`
	Currency      string    `json:"currency"`
	Subtotal      float64   `json:"subtotal"`
	Tax           float64   `json:"tax"`
	Total         float64   `json:"total"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		ProjectID:     inv.ProjectID,
		IssueDate:     formatDate(inv.IssueDate),
		DueDate:       formatDatePtr(inv.DueDate),
		Status:        inv.Status,
		Currency:      inv.Currency,
		Subtotal:      inv.Subtotal.InexactFloat64(),
		Tax:           inv.Tax.InexactFloat64(),
		Total:         inv.Total.InexactFloat64(),
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
	}
}

// ToInvoiceResponses converts a slice of domain.Invoice to []InvoiceResponse.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		responses[i] = ToInvoiceResponse(&inv)
	}
	return responses
}

// ToDomainInvoice converts a create request to a domain.Invoice. IssueDate
// and DueDate have already passed the dateonly binding validation, but the
// parse error is still propagated in case the request bypassed binding.
func (r CreateInvoiceRequest) ToDomainInvoice() (domain.Invoice, error) {
	issueDate, err := ParseDate(r.IssueDate)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("invalid issue_date: %w", err)
	}
	dueDate, err := parseDatePtr(r.DueDate)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("invalid due_date: %w", err)
	}
	return domain.Invoice{
		InvoiceNumber: r.InvoiceNumber,
		ClientID:      r.ClientID,
		ProjectID:     r.ProjectID,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Status:        r.Status,
		Currency:      r.Currency,
		Subtotal:      r.Subtotal,
		Tax:           r.Tax,
		Total:         r.Total,
		Notes:         r.Notes,
	}, nil
}
