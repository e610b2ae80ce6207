package repositories

import (
	"context"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
)

// UserRepository defines persistence operations for the credential store.
type UserRepository interface {
	// CreateUser inserts a user. A duplicate email yields apperrors.ErrDuplicate.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)

	// FindUserByEmail returns apperrors.ErrNotFound when no row matches.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
