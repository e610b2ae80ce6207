package dto

import (
	"strconv"
	"time"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
)

// ExportFilters echoes the resolved filter values in the JSON export, with
// explicit nulls for anything unset.
type ExportFilters struct {
	FromDate  *string `json:"from_date"`
	ToDate    *string `json:"to_date"`
	CompanyID *int64  `json:"company_id"`
	ClientID  *int64  `json:"client_id"`
	ProjectID *int64  `json:"project_id"`
}

// ExportInvoice is an invoice row in the JSON export. Unlike the dashboard
// serialization it omits created_at.
type ExportInvoice struct {
	ID            int64   `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	ClientID      int64   `json:"client_id"`
	ProjectID     int64   `json:"project_id"`
	IssueDate     string  `json:"issue_date"`
	DueDate       *string `json:"due_date"`
	Status        string  `json:"status"`
	Currency      string  `json:"currency"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	Notes         *string `json:"notes"`
}

// ExportPayment is a payment row in the JSON export, without created_at.
type ExportPayment struct {
	ID            int64   `json:"id"`
	PaymentNumber string  `json:"payment_number"`
	InvoiceID     *int64  `json:"invoice_id"`
	ProjectID     int64   `json:"project_id"`
	ClientID      *int64  `json:"client_id"`
	CompanyID     *int64  `json:"company_id"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	Method        *string `json:"method"`
	Bank          *string `json:"bank"`
	TransactionNo *string `json:"transaction_no"`
	Notes         *string `json:"notes"`
}

// ExportDocument is the JSON export payload.
type ExportDocument struct {
	ExportedAt time.Time       `json:"exported_at"`
	Filters    ExportFilters   `json:"filters"`
	Invoices   []ExportInvoice `json:"invoices"`
	Payments   []ExportPayment `json:"payments"`
}

// ToExportFilters echoes a domain filter set.
func ToExportFilters(f domain.DashboardFilter) ExportFilters {
	return ExportFilters{
		FromDate:  formatDatePtr(f.FromDate),
		ToDate:    formatDatePtr(f.ToDate),
		CompanyID: f.CompanyID,
		ClientID:  f.ClientID,
		ProjectID: f.ProjectID,
	}
}

// ToExportInvoices converts domain invoices to export rows. It always
// returns a non-nil slice so the JSON array is [] rather than null.
func ToExportInvoices(invoices []domain.Invoice) []ExportInvoice {
	rows := make([]ExportInvoice, len(invoices))
	for i, inv := range invoices {
		rows[i] = ExportInvoice{
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
		}
	}
	return rows
}

// ToExportPayments converts domain payments to export rows.
func ToExportPayments(payments []domain.Payment) []ExportPayment {
	rows := make([]ExportPayment, len(payments))
	for i, p := range payments {
		rows[i] = ExportPayment{
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
		}
	}
	return rows
}

// CSVInvoiceHeader and CSVPaymentHeader are the column headers of the two
// CSV export sections, in wire order.
var (
	CSVInvoiceHeader = []string{"ID", "Invoice Number", "Client ID", "Project ID", "Issue Date", "Due Date", "Status", "Currency", "Subtotal", "Tax", "Total", "Notes"}
	CSVPaymentHeader = []string{"ID", "Payment Number", "Invoice ID", "Project ID", "Client ID", "Company ID", "Amount", "Payment Date", "Method", "Bank", "Transaction No", "Notes"}
)

// ToCSVInvoiceRecord renders one invoice as a CSV record. Missing optional
// fields render as empty strings, never a literal null.
func ToCSVInvoiceRecord(inv *domain.Invoice) []string {
	return []string{
		strconv.FormatInt(inv.ID, 10),
		inv.InvoiceNumber,
		strconv.FormatInt(inv.ClientID, 10),
		strconv.FormatInt(inv.ProjectID, 10),
		formatDate(inv.IssueDate),
		emptyIfNilDate(inv.DueDate),
		inv.Status,
		inv.Currency,
		inv.Subtotal.StringFixed(2),
		inv.Tax.StringFixed(2),
		inv.Total.StringFixed(2),
		emptyIfNil(inv.Notes),
	}
}

// ToCSVPaymentRecord renders one payment as a CSV record.
func ToCSVPaymentRecord(p *domain.Payment) []string {
	return []string{
		strconv.FormatInt(p.ID, 10),
		p.PaymentNumber,
		emptyIfNilInt(p.InvoiceID),
		strconv.FormatInt(p.ProjectID, 10),
		emptyIfNilInt(p.ClientID),
		emptyIfNilInt(p.CompanyID),
		p.Amount.StringFixed(2),
		formatDate(p.PaymentDate),
		emptyIfNil(p.Method),
		emptyIfNil(p.Bank),
		emptyIfNil(p.TransactionNo),
		emptyIfNil(p.Notes),
	}
}

func emptyIfNil(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func emptyIfNilInt(n *int64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatInt(*n, 10)
}

func emptyIfNilDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}
