package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records money received against a project, optionally tied to a
// specific invoice. The payment number is globally unique. Amount is assumed
// to be in the invoice's currency; this is not cross-validated.
type Payment struct {
	ID            int64           `json:"id"`
	PaymentNumber string          `json:"payment_number"`
	InvoiceID     *int64          `json:"invoice_id"`
	ProjectID     int64           `json:"project_id"`
	ClientID      *int64          `json:"client_id"`
	CompanyID     *int64          `json:"company_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	Method        *string         `json:"method"`
	Bank          *string         `json:"bank"`
	TransactionNo *string         `json:"transaction_no"`
	Notes         *string         `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
}
