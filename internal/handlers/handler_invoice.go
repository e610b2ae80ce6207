package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/invoicerhq/invoicer_backend/internal/apperrors"
	portssvc "github.com/invoicerhq/invoicer_backend/internal/core/ports/services"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
	"github.com/invoicerhq/invoicer_backend/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceService
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceService) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers all invoice-related routes.
func registerInvoiceRoutes(rg *gin.Engine, invoiceService portssvc.InvoiceService) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/next-number", h.nextNumber)
	}
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Stores an invoice. The invoice number must be supplied by the caller, normally computed via the next-number endpoint; a colliding number returns 409 and the caller should re-request a sequence and retry.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse "Malformed body, bad date, number/year mismatch, or missing client/project"
// @Failure 409 {object} ErrorResponse "Invoice number already used"
// @Failure 500 {object} ErrorResponse
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Invoice number already used"})
		default:
			logger.Error("Failed to create invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create invoice"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists invoices by issue date, newest first. The company filter reaches invoices through their project.
// @Tags invoices
// @Produce json
// @Param client_id query int false "Filter by client"
// @Param project_id query int false "Filter by project"
// @Param company_id query int false "Filter by company (via project)"
// @Param status query string false "Filter by status"
// @Success 200 {array} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}

// nextNumber godoc
// @Summary Peek the next invoice sequence
// @Description Returns the next unused sequence for the company in the issue date's calendar year. Read-only: nothing is reserved, so the caller must be prepared for a 409 on create.
// @Tags invoices
// @Produce json
// @Param company_id query int true "Company ID"
// @Param issue_date query string true "Issue date (YYYY-MM-DD) determining the sequence year"
// @Success 200 {object} dto.NextNumberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/next-number [get]
func (h *invoiceHandler) nextNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, err := strconv.ParseInt(c.Query("company_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or missing company_id"})
		return
	}
	issueDate, err := dto.ParseDate(c.Query("issue_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or missing issue_date, expected YYYY-MM-DD"})
		return
	}

	sequence, err := h.invoiceService.NextInvoiceSequence(c.Request.Context(), companyID, issueDate)
	if err != nil {
		logger.Error("Failed to compute next invoice sequence", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute next invoice sequence"})
		return
	}

	c.JSON(http.StatusOK, dto.NextNumberResponse{NextSequence: sequence})
}
