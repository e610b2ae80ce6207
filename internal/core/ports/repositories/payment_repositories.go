package repositories

import (
	"context"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
)

// PaymentListFilter narrows payment listings. All fields filter directly on
// the payment's own columns.
type PaymentListFilter struct {
	CompanyID *int64
	ClientID  *int64
	ProjectID *int64
}

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	// CreatePayment inserts a payment. A duplicate payment number yields
	// apperrors.ErrDuplicate.
	CreatePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)

	// ListPayments returns payments ordered by payment date descending.
	ListPayments(ctx context.Context, filter PaymentListFilter) ([]domain.Payment, error)
}
