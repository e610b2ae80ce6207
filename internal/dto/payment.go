package dto

import (
	"fmt"
	"time"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to record a payment.
type CreatePaymentRequest struct {
	PaymentNumber string          `json:"payment_number" binding:"required"`
	InvoiceID     *int64          `json:"invoice_id"`
	ProjectID     int64           `json:"project_id" binding:"required"`
	ClientID      *int64          `json:"client_id"`
	CompanyID     *int64          `json:"company_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   string          `json:"payment_date" binding:"required,dateonly"`
	Method        *string         `json:"method"`
	Bank          *string         `json:"bank"`
	TransactionNo *string         `json:"transaction_no"`
	Notes         *string         `json:"notes"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	CompanyID *int64 `form:"company_id"`
	ClientID  *int64 `form:"client_id"`
	ProjectID *int64 `form:"project_id"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	ID            int64     `json:"id"`
	PaymentNumber string    `json:"payment_number"`
	InvoiceID     *int64    `json:"invoice_id"`
	ProjectID     int64     `json:"project_id"`
	ClientID      *int64    `json:"client_id"`
	CompanyID     *int64    `json:"company_id"`
	Amount        float64   `json:"amount"`
	PaymentDate   string    `json:"payment_date"`
	Method        *string   `json:"method"`
	Bank          *string   `json:"bank"`
	TransactionNo *string   `json:"transaction_no"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		PaymentNumber: p.PaymentNumber,
		InvoiceID:     p.InvoiceID,
		ProjectID:     p.ProjectID,
		ClientID:      p.ClientID,
		CompanyID:     p.CompanyID,
		Amount:        p.Amount.InexactFloat64(),
		PaymentDate:   formatDate(p.PaymentDate),
		Method:        p.Method,
		Bank:          p.Bank,
		TransactionNo: p.TransactionNo,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to []PaymentResponse.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(&p)
	}
	return responses
}

// ToDomainPayment converts a create request to a domain.Payment.
func (r CreatePaymentRequest) ToDomainPayment() (domain.Payment, error) {
	paymentDate, err := ParseDate(r.PaymentDate)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("invalid payment_date: %w", err)
	}
	return domain.Payment{
		PaymentNumber: r.PaymentNumber,
		InvoiceID:     r.InvoiceID,
		ProjectID:     r.ProjectID,
		ClientID:      r.ClientID,
		CompanyID:     r.CompanyID,
		Amount:        r.Amount,
		PaymentDate:   paymentDate,
		Method:        r.Method,
		Bank:          r.Bank,
		TransactionNo: r.TransactionNo,
		Notes:         r.Notes,
	}, nil
}
