package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/invoicerhq/invoicer_backend/internal/apperrors"
	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	portsrepo "github.com/invoicerhq/invoicer_backend/internal/core/ports/repositories"
	portssvc "github.com/invoicerhq/invoicer_backend/internal/core/ports/services"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
)

const exportTimestampLayout = "20060102_150405"

// dashboardService implements the DashboardService interface
type dashboardService struct {
	BaseService
	dashboardRepo portsrepo.DashboardRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo portsrepo.DashboardRepository) portssvc.DashboardService {
	return &dashboardService{dashboardRepo: repo}
}

// Ensure dashboardService implements the DashboardService interface
var _ portssvc.DashboardService = (*dashboardService)(nil)

// Summary computes the filtered metrics and recent-activity lists. All four
// queries apply the same filter, so the recent lists are always drawn from
// the population the totals describe.
func (s *dashboardService) Summary(ctx context.Context, filter domain.DashboardFilter) (*domain.DashboardSummary, error) {
	count, totalAmount, err := s.dashboardRepo.GetInvoiceTotals(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute invoice totals")
		return nil, fmt.Errorf("failed to compute invoice totals: %w", err)
	}

	totalPaid, err := s.dashboardRepo.GetPaymentTotals(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute payment totals")
		return nil, fmt.Errorf("failed to compute payment totals: %w", err)
	}

	recentInvoices, err := s.dashboardRepo.ListFilteredInvoices(ctx, filter, domain.RecentLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent invoices")
		return nil, fmt.Errorf("failed to list recent invoices: %w", err)
	}

	recentPayments, err := s.dashboardRepo.ListFilteredPayments(ctx, filter, domain.RecentLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent payments")
		return nil, fmt.Errorf("failed to list recent payments: %w", err)
	}

	return &domain.DashboardSummary{
		Metrics: domain.DashboardMetrics{
			TotalInvoices: count,
			TotalAmount:   totalAmount,
			TotalPaid:     totalPaid,
			// Signed on purpose: overpayment shows up as a negative balance.
			Outstanding: totalAmount.Sub(totalPaid),
		},
		RecentInvoices: recentInvoices,
		RecentPayments: recentPayments,
	}, nil
}

// Export renders every invoice and payment matching the filter as a
// downloadable document in the requested format.
func (s *dashboardService) Export(ctx context.Context, filter domain.DashboardFilter, format string) (*domain.Export, error) {
	if format != domain.ExportFormatCSV && format != domain.ExportFormatJSON {
		return nil, fmt.Errorf("%w: unsupported export format %q", apperrors.ErrValidation, format)
	}

	invoices, err := s.dashboardRepo.ListFilteredInvoices(ctx, filter, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices for export")
		return nil, fmt.Errorf("failed to list invoices for export: %w", err)
	}
	payments, err := s.dashboardRepo.ListFilteredPayments(ctx, filter, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for export")
		return nil, fmt.Errorf("failed to list payments for export: %w", err)
	}

	now := time.Now().UTC()
	switch format {
	case domain.ExportFormatJSON:
		content, err := renderJSONExport(filter, invoices, payments, now)
		if err != nil {
			s.LogError(ctx, err, "Failed to render JSON export")
			return nil, fmt.Errorf("failed to render JSON export: %w", err)
		}
		return &domain.Export{
			Filename:    fmt.Sprintf("dashboard_export_%s.json", now.Format(exportTimestampLayout)),
			ContentType: "application/json",
			Content:     content,
		}, nil
	default:
		content, err := renderCSVExport(invoices, payments)
		if err != nil {
			s.LogError(ctx, err, "Failed to render CSV export")
			return nil, fmt.Errorf("failed to render CSV export: %w", err)
		}
		return &domain.Export{
			Filename:    fmt.Sprintf("dashboard_export_%s.csv", now.Format(exportTimestampLayout)),
			ContentType: "text/csv",
			Content:     content,
		}, nil
	}
}

func renderJSONExport(filter domain.DashboardFilter, invoices []domain.Invoice, payments []domain.Payment, exportedAt time.Time) ([]byte, error) {
	doc := dto.ExportDocument{
		ExportedAt: exportedAt,
		Filters:    dto.ToExportFilters(filter),
		Invoices:   dto.ToExportInvoices(invoices),
		Payments:   dto.ToExportPayments(payments),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// renderCSVExport writes the two-section CSV layout: an INVOICES block, a
// blank line, then a PAYMENTS block. Each block starts with a marker row and
// its column header even when it has no data rows.
func renderCSVExport(invoices []domain.Invoice, payments []domain.Payment) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"INVOICES"}); err != nil {
		return nil, err
	}
	if err := w.Write(dto.CSVInvoiceHeader); err != nil {
		return nil, err
	}
	for i := range invoices {
		if err := w.Write(dto.ToCSVInvoiceRecord(&invoices[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	buf.WriteString("\n")

	if err := w.Write([]string{"PAYMENTS"}); err != nil {
		return nil, err
	}
	if err := w.Write(dto.CSVPaymentHeader); err != nil {
		return nil, err
	}
	for i := range payments {
		if err := w.Write(dto.ToCSVPaymentRecord(&payments[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
