package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoicerhq/invoicer_backend/internal/apperrors"
	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	portssvc "github.com/invoicerhq/invoicer_backend/internal/core/ports/services"
	"github.com/invoicerhq/invoicer_backend/internal/handlers"
	"github.com/invoicerhq/invoicer_backend/internal/platform/config"
)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context, filter domain.DashboardFilter) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

func (m *MockDashboardService) Export(ctx context.Context, filter domain.DashboardFilter, format string) (*domain.Export, error) {
	args := m.Called(ctx, filter, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Export), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.DashboardService = (*MockDashboardService)(nil)

// --- Test Suite ---

type DashboardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockDashboardService
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockDashboardService)

	cfg := &config.Config{IsProduction: true}
	services := &portssvc.ServiceContainer{Dashboard: suite.mockService}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *DashboardHandlerTestSuite) serve(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *DashboardHandlerTestSuite) TestSummary_Success() {
	summary := &domain.DashboardSummary{
		Metrics: domain.DashboardMetrics{
			TotalInvoices: 3,
			TotalAmount:   decimal.NewFromInt(6600),
			TotalPaid:     decimal.NewFromInt(2100),
			Outstanding:   decimal.NewFromInt(4500),
		},
		RecentInvoices: []domain.Invoice{},
		RecentPayments: []domain.Payment{},
	}
	suite.mockService.On("Summary", mock.Anything, domain.DashboardFilter{}).Return(summary, nil).Once()

	w := suite.serve(http.MethodGet, "/dashboard/summary")

	suite.Equal(http.StatusOK, w.Code)
	var body struct {
		Metrics struct {
			TotalInvoices int64   `json:"total_invoices"`
			TotalAmount   float64 `json:"total_amount"`
			TotalPaid     float64 `json:"total_paid"`
			Outstanding   float64 `json:"outstanding"`
		} `json:"metrics"`
		RecentInvoices []json.RawMessage `json:"recent_invoices"`
		RecentPayments []json.RawMessage `json:"recent_payments"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(3), body.Metrics.TotalInvoices)
	suite.InDelta(6600, body.Metrics.TotalAmount, 0.001)
	suite.InDelta(2100, body.Metrics.TotalPaid, 0.001)
	suite.InDelta(4500, body.Metrics.Outstanding, 0.001)
	suite.NotNil(body.RecentInvoices)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestSummary_PassesFilters() {
	from := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	companyID := int64(4)
	expectedFilter := domain.DashboardFilter{FromDate: &from, ToDate: &to, CompanyID: &companyID}

	summary := &domain.DashboardSummary{RecentInvoices: []domain.Invoice{}, RecentPayments: []domain.Payment{}}
	suite.mockService.On("Summary", mock.Anything, expectedFilter).Return(summary, nil).Once()

	w := suite.serve(http.MethodGet, "/dashboard/summary?from_date=2025-08-01&to_date=2025-08-31&company_id=4")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestSummary_BadDate() {
	w := suite.serve(http.MethodGet, "/dashboard/summary?from_date=08-01-2025")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Summary")
}

func (suite *DashboardHandlerTestSuite) TestSummary_BadCompanyID() {
	w := suite.serve(http.MethodGet, "/dashboard/summary?company_id=acme")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Summary")
}

func (suite *DashboardHandlerTestSuite) TestExport_CSVDownload() {
	export := &domain.Export{
		Filename:    "dashboard_export_20250901_120000.csv",
		ContentType: "text/csv",
		Content:     []byte("INVOICES\n"),
	}
	suite.mockService.On("Export", mock.Anything, domain.DashboardFilter{}, "csv").Return(export, nil).Once()

	w := suite.serve(http.MethodGet, "/dashboard/export?format=csv")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(`attachment; filename="dashboard_export_20250901_120000.csv"`, w.Header().Get("Content-Disposition"))
	suite.Equal("text/csv", w.Header().Get("Content-Type"))
	suite.Equal("INVOICES\n", w.Body.String())
}

func (suite *DashboardHandlerTestSuite) TestExport_DefaultsToCSV() {
	export := &domain.Export{Filename: "dashboard_export_20250901_120000.csv", ContentType: "text/csv"}
	suite.mockService.On("Export", mock.Anything, domain.DashboardFilter{}, "csv").Return(export, nil).Once()

	w := suite.serve(http.MethodGet, "/dashboard/export")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestExport_UnknownFormat() {
	suite.mockService.On("Export", mock.Anything, domain.DashboardFilter{}, "xml").Return(nil, apperrors.ErrValidation).Once()

	w := suite.serve(http.MethodGet, "/dashboard/export?format=xml")

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func TestDashboardHandler(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
