package dto

import (
	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
)

// DashboardMetricsResponse holds the aggregate figures. Sums are exact
// decimals internally and become plain numbers here, at the serialization
// boundary.
type DashboardMetricsResponse struct {
	TotalInvoices int64   `json:"total_invoices"`
	TotalAmount   float64 `json:"total_amount"`
	TotalPaid     float64 `json:"total_paid"`
	Outstanding   float64 `json:"outstanding"`
}

// DashboardSummaryResponse is the payload of the dashboard summary endpoint.
type DashboardSummaryResponse struct {
	Metrics        DashboardMetricsResponse `json:"metrics"`
	RecentInvoices []InvoiceResponse        `json:"recent_invoices"`
	RecentPayments []PaymentResponse        `json:"recent_payments"`
}

// ToDashboardSummaryResponse converts a domain.DashboardSummary to its DTO.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		Metrics: DashboardMetricsResponse{
			TotalInvoices: s.Metrics.TotalInvoices,
			TotalAmount:   s.Metrics.TotalAmount.InexactFloat64(),
			TotalPaid:     s.Metrics.TotalPaid.InexactFloat64(),
			Outstanding:   s.Metrics.Outstanding.InexactFloat64(),
		},
		RecentInvoices: ToInvoiceResponses(s.RecentInvoices),
		RecentPayments: ToPaymentResponses(s.RecentPayments),
	}
}
