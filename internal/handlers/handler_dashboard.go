package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/invoicerhq/invoicer_backend/internal/apperrors"
	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	portssvc "github.com/invoicerhq/invoicer_backend/internal/core/ports/services"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
	"github.com/invoicerhq/invoicer_backend/internal/middleware"
)

// dashboardHandler handles HTTP requests for the dashboard views.
type dashboardHandler struct {
	dashboardService portssvc.DashboardService
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(ds portssvc.DashboardService) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

// registerDashboardRoutes registers the dashboard routes.
func registerDashboardRoutes(rg *gin.Engine, dashboardService portssvc.DashboardService) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.summary)
		dashboard.GET("/export", h.export)
	}
}

// parseDashboardFilter builds a filter from query parameters. All parameters
// are optional; present ones must parse.
func parseDashboardFilter(c *gin.Context) (domain.DashboardFilter, error) {
	var filter domain.DashboardFilter

	if raw := c.Query("from_date"); raw != "" {
		t, err := dto.ParseDate(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid from_date %q, expected YYYY-MM-DD", raw)
		}
		filter.FromDate = &t
	}
	if raw := c.Query("to_date"); raw != "" {
		t, err := dto.ParseDate(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid to_date %q, expected YYYY-MM-DD", raw)
		}
		filter.ToDate = &t
	}
	for param, target := range map[string]**int64{
		"company_id": &filter.CompanyID,
		"client_id":  &filter.ClientID,
		"project_id": &filter.ProjectID,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid %s %q", param, raw)
		}
		*target = &id
	}
	return filter, nil
}

// summary godoc
// @Summary Dashboard summary
// @Description Returns aggregate metrics and the three most recent invoices and payments under the given filters. The outstanding balance is signed and goes negative on overpayment.
// @Tags dashboard
// @Produce json
// @Param from_date query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param to_date query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param company_id query int false "Filter by company"
// @Param client_id query int false "Filter by client"
// @Param project_id query int false "Filter by project"
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/summary [get]
func (h *dashboardHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter, err := parseDashboardFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}

// export godoc
// @Summary Export dashboard data
// @Description Downloads every invoice and payment matching the filters as CSV or JSON.
// @Tags dashboard
// @Produce text/csv
// @Produce json
// @Param format query string true "Export format" Enums(csv, json)
// @Param from_date query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param to_date query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param company_id query int false "Filter by company"
// @Param client_id query int false "Filter by client"
// @Param project_id query int false "Filter by project"
// @Success 200 {string} string "File download"
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Unsupported format"
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/export [get]
func (h *dashboardHandler) export(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter, err := parseDashboardFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	format := c.DefaultQuery("format", domain.ExportFormatCSV)
	export, err := h.dashboardService.Export(c.Request.Context(), filter, format)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: fmt.Sprintf("Unsupported export format %q, expected csv or json", format)})
			return
		}
		logger.Error("Failed to export dashboard data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export dashboard data"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Content)
}
