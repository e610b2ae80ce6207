package handlers_test

import (
	"bytes"
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
	"github.com/invoicerhq/invoicer_backend/internal/dto"
	"github.com/invoicerhq/invoicer_backend/internal/handlers"
	"github.com/invoicerhq/invoicer_backend/internal/platform/config"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) NextInvoiceSequence(ctx context.Context, companyID int64, issueDate time.Time) (int, error) {
	args := m.Called(ctx, companyID, issueDate)
	return args.Int(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.InvoiceService = (*MockInvoiceService)(nil)

// --- Test Suite ---

type InvoiceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockInvoiceService
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterCustomValidations())
	suite.router = gin.New()
	suite.mockService = new(MockInvoiceService)

	cfg := &config.Config{IsProduction: true}
	services := &portssvc.ServiceContainer{Invoice: suite.mockService}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *InvoiceHandlerTestSuite) postJSON(target string, payload any) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *InvoiceHandlerTestSuite) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validCreateRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		InvoiceNumber: "INV25#001",
		ClientID:      7,
		ProjectID:     11,
		IssueDate:     "2025-06-15",
		Status:        domain.InvoiceStatusDraft,
		Currency:      "EUR",
		Subtotal:      decimal.NewFromInt(100),
		Tax:           decimal.NewFromInt(19),
		Total:         decimal.NewFromInt(119),
	}
}

// --- Test Cases ---

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_Success() {
	req := validCreateRequest()
	created := &domain.Invoice{
		ID:            1,
		InvoiceNumber: req.InvoiceNumber,
		ClientID:      req.ClientID,
		ProjectID:     req.ProjectID,
		IssueDate:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Status:        req.Status,
		Currency:      req.Currency,
		Subtotal:      req.Subtotal,
		Tax:           req.Tax,
		Total:         req.Total,
	}
	suite.mockService.On("CreateInvoice", mock.Anything, mock.AnythingOfType("dto.CreateInvoiceRequest")).Return(created, nil).Once()

	w := suite.postJSON("/invoices", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.InvoiceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("INV25#001", resp.InvoiceNumber)
	suite.Equal("2025-06-15", resp.IssueDate)
	suite.InDelta(119, resp.Total, 0.001)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_BadDateRejectedByBinding() {
	req := validCreateRequest()
	req.IssueDate = "15/06/2025"

	w := suite.postJSON("/invoices", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateInvoice")
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_DuplicateNumber() {
	suite.mockService.On("CreateInvoice", mock.Anything, mock.AnythingOfType("dto.CreateInvoiceRequest")).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.postJSON("/invoices", validCreateRequest())

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_ValidationError() {
	suite.mockService.On("CreateInvoice", mock.Anything, mock.AnythingOfType("dto.CreateInvoiceRequest")).Return(nil, apperrors.ErrValidation).Once()

	w := suite.postJSON("/invoices", validCreateRequest())

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestListInvoices_Success() {
	invoices := []domain.Invoice{
		{ID: 2, InvoiceNumber: "INV25#002", IssueDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 1, InvoiceNumber: "INV25#001", IssueDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockService.On("ListInvoices", mock.Anything, mock.AnythingOfType("dto.ListInvoicesParams")).Return(invoices, nil).Once()

	w := suite.get("/invoices?company_id=4")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.InvoiceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("INV25#002", resp[0].InvoiceNumber)
}

func (suite *InvoiceHandlerTestSuite) TestNextNumber_Success() {
	issueDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("NextInvoiceSequence", mock.Anything, int64(4), issueDate).Return(2, nil).Once()

	w := suite.get("/invoices/next-number?company_id=4&issue_date=2025-06-15")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.NextNumberResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.NextSequence)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestNextNumber_MissingCompanyID() {
	w := suite.get("/invoices/next-number?issue_date=2025-06-15")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "NextInvoiceSequence")
}

func (suite *InvoiceHandlerTestSuite) TestNextNumber_BadIssueDate() {
	w := suite.get("/invoices/next-number?company_id=4&issue_date=June+15")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "NextInvoiceSequence")
}

func TestInvoiceHandler(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
