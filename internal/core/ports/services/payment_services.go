package services

import (
	"context"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
)

// PaymentService defines operations for recording and listing payments.
type PaymentService interface {
	// CreatePayment stores a payment. A duplicate payment number yields
	// apperrors.ErrDuplicate.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)

	ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, error)
}
