package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/invoicerhq/invoicer_backend/internal/apperrors"
	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	portsrepo "github.com/invoicerhq/invoicer_backend/internal/core/ports/repositories"
	portssvc "github.com/invoicerhq/invoicer_backend/internal/core/ports/services"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
)

// paymentService implements the PaymentService interface
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(repo portsrepo.PaymentRepository) portssvc.PaymentService {
	return &paymentService{paymentRepo: repo}
}

// Ensure paymentService implements the PaymentService interface
var _ portssvc.PaymentService = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	payment, err := req.ToDomainPayment()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	created, err := s.paymentRepo.CreatePayment(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to create payment",
			slog.String("payment_number", payment.PaymentNumber))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	s.LogInfo(ctx, "Payment created",
		slog.Int64("payment_id", created.ID),
		slog.String("payment_number", created.PaymentNumber))
	return created, nil
}

func (s *paymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, error) {
	filter := portsrepo.PaymentListFilter{
		CompanyID: params.CompanyID,
		ClientID:  params.ClientID,
		ProjectID: params.ProjectID,
	}
	payments, err := s.paymentRepo.ListPayments(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
