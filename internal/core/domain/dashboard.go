package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecentLimit bounds the "recent activity" lists on the dashboard.
const RecentLimit = 3

// Export formats accepted by the dashboard export endpoint. Anything else is
// a client input error.
const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

// DashboardFilter is the optional conjunction of criteria applied uniformly
// to invoices and payments. Nil fields are unset. Date bounds are inclusive
// and apply to issue_date for invoices, payment_date for payments. The
// company filter reaches invoices through their project; payments carry a
// company reference directly.
type DashboardFilter struct {
	FromDate  *time.Time
	ToDate    *time.Time
	CompanyID *int64
	ClientID  *int64
	ProjectID *int64
}

// DashboardMetrics holds the aggregate figures for a filter set. Sums are
// exact decimals; Outstanding is signed and may be negative on overpayment.
type DashboardMetrics struct {
	TotalInvoices int64
	TotalAmount   decimal.Decimal
	TotalPaid     decimal.Decimal
	Outstanding   decimal.Decimal
}

// DashboardSummary is the full dashboard payload: metrics plus the bounded
// recent-activity lists.
type DashboardSummary struct {
	Metrics        DashboardMetrics
	RecentInvoices []Invoice
	RecentPayments []Payment
}

// Export is a rendered download artifact produced by the export formatter.
type Export struct {
	Filename    string
	ContentType string
	Content     []byte
}
