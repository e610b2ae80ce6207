package services

import (
	"context"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
)

// DashboardService defines the aggregation and export operations behind the
// dashboard endpoints.
type DashboardService interface {
	// Summary computes the filtered metrics and recent-activity lists.
	Summary(ctx context.Context, filter domain.DashboardFilter) (*domain.DashboardSummary, error)

	// Export renders the full filtered data set as a downloadable artifact.
	// format must be domain.ExportFormatCSV or domain.ExportFormatJSON; any
	// other value yields apperrors.ErrValidation.
	Export(ctx context.Context, filter domain.DashboardFilter, format string) (*domain.Export, error)
}
