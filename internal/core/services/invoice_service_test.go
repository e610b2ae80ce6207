package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoicerhq/invoicer_backend/internal/apperrors"
	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	portsrepo "github.com/invoicerhq/invoicer_backend/internal/core/ports/repositories"
	portssvc "github.com/invoicerhq/invoicer_backend/internal/core/ports/services"
	"github.com/invoicerhq/invoicer_backend/internal/core/services"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
)

// MockInvoiceRepository is a mock type for the InvoiceRepository interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice, counterYear int, sequence int) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice, counterYear, sequence)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) NextSequence(ctx context.Context, companyID int64, year int) (int, error) {
	args := m.Called(ctx, companyID, year)
	return args.Int(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portsrepo.InvoiceRepository = (*MockInvoiceRepository)(nil)

// --- Test Suite Setup ---

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInvoiceRepository
	service  portssvc.InvoiceService
	ctx      context.Context
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.service = services.NewInvoiceService(suite.mockRepo)
	suite.ctx = context.Background()
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV25#003",
		ClientID:      7,
		ProjectID:     11,
		IssueDate:     "2025-06-15",
		Status:        domain.InvoiceStatusDraft,
		Currency:      "EUR",
		Subtotal:      decimal.NewFromInt(100),
		Tax:           decimal.NewFromInt(19),
		Total:         decimal.NewFromInt(119),
	}

	expected := &domain.Invoice{ID: 1, InvoiceNumber: "INV25#003"}
	// The counter must be advanced for the issue date's calendar year and the
	// sequence embedded in the number.
	suite.mockRepo.On("CreateInvoice", suite.ctx, mock.AnythingOfType("domain.Invoice"), 2025, 3).Return(expected, nil).Once()

	created, err := suite.service.CreateInvoice(suite.ctx, req)

	suite.NoError(err)
	suite.Equal(expected, created)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_MalformedNumber() {
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "2025-001",
		ClientID:      7,
		ProjectID:     11,
		IssueDate:     "2025-06-15",
		Status:        domain.InvoiceStatusDraft,
		Currency:      "EUR",
	}

	created, err := suite.service.CreateInvoice(suite.ctx, req)

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateInvoice")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_YearMismatch() {
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV24#001",
		ClientID:      7,
		ProjectID:     11,
		IssueDate:     "2025-06-15",
		Status:        domain.InvoiceStatusDraft,
		Currency:      "EUR",
	}

	created, err := suite.service.CreateInvoice(suite.ctx, req)

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateInvoice")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DuplicateNumberPassesThrough() {
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV25#001",
		ClientID:      7,
		ProjectID:     11,
		IssueDate:     "2025-06-15",
		Status:        domain.InvoiceStatusSent,
		Currency:      "EUR",
	}

	suite.mockRepo.On("CreateInvoice", suite.ctx, mock.AnythingOfType("domain.Invoice"), 2025, 1).Return(nil, apperrors.ErrDuplicate).Once()

	created, err := suite.service.CreateInvoice(suite.ctx, req)

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestNextInvoiceSequence_EmptyCounter() {
	issueDate := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("NextSequence", suite.ctx, int64(5), 2025).Return(1, nil).Once()

	sequence, err := suite.service.NextInvoiceSequence(suite.ctx, 5, issueDate)

	suite.NoError(err)
	suite.Equal(1, sequence)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestNextInvoiceSequence_AdvancesAfterInsert() {
	issueDate := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("NextSequence", suite.ctx, int64(5), 2025).Return(2, nil).Once()

	sequence, err := suite.service.NextInvoiceSequence(suite.ctx, 5, issueDate)

	suite.NoError(err)
	suite.Equal(2, sequence)
}

func (suite *InvoiceServiceTestSuite) TestNextInvoiceSequence_YearScoped() {
	// A new calendar year starts its own counter.
	jan2026 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("NextSequence", suite.ctx, int64(5), 2026).Return(1, nil).Once()

	sequence, err := suite.service.NextInvoiceSequence(suite.ctx, 5, jan2026)

	suite.NoError(err)
	suite.Equal(1, sequence)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_PassesFilter() {
	clientID := int64(7)
	status := domain.InvoiceStatusSent
	params := dto.ListInvoicesParams{ClientID: &clientID, Status: &status}
	expected := []domain.Invoice{{ID: 1}, {ID: 2}}

	suite.mockRepo.On("ListInvoices", suite.ctx, portsrepo.InvoiceListFilter{ClientID: &clientID, Status: &status}).Return(expected, nil).Once()

	invoices, err := suite.service.ListInvoices(suite.ctx, params)

	suite.NoError(err)
	suite.Equal(expected, invoices)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
