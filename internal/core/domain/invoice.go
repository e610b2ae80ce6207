package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses are free-form labels; these are the ones the UI uses.
const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusSent  = "sent"
	InvoiceStatusPaid  = "paid"
)

// Invoice belongs to a Client and a Project. The invoice number is globally
// unique and embeds the per-company-per-year sequence. Monetary fields are
// exact decimals; subtotal + tax is expected to equal total but storage does
// not enforce it.
type Invoice struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	ClientID      int64           `json:"client_id"`
	ProjectID     int64           `json:"project_id"`
	IssueDate     time.Time       `json:"issue_date"`
	DueDate       *time.Time      `json:"due_date"`
	Status        string          `json:"status"`
	Currency      string          `json:"currency"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Notes         *string         `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
}

// invoiceNumberPattern matches numbers of the form INV{yy}#{seq}, e.g.
// "INV25#001". The sequence field is at least 3 digits and grows in width
// once a company passes 999 invoices in a year.
var invoiceNumberPattern = regexp.MustCompile(`^INV(\d{2})#(\d+)$`)

// FormatInvoiceNumber renders the canonical invoice number for a sequence
// allocated in the calendar year of issueDate.
func FormatInvoiceNumber(issueDate time.Time, sequence int) string {
	return fmt.Sprintf("INV%02d#%03d", issueDate.Year()%100, sequence)
}

// ParseInvoiceNumber extracts the two-digit year and sequence from an invoice
// number. It returns an error for anything that does not match the canonical
// layout.
func ParseInvoiceNumber(number string) (yearSuffix int, sequence int, err error) {
	m := invoiceNumberPattern.FindStringSubmatch(number)
	if m == nil {
		return 0, 0, fmt.Errorf("invoice number %q does not match INV{yy}#{seq}", number)
	}
	yearSuffix, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in invoice number %q: %w", number, err)
	}
	sequence, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sequence in invoice number %q: %w", number, err)
	}
	if sequence < 1 {
		return 0, 0, fmt.Errorf("invoice number %q has non-positive sequence", number)
	}
	return yearSuffix, sequence, nil
}
