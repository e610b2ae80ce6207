package services

import (
	"context"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
)

// UserService defines the credential-store operations. There is no token or
// session management in this backend; login is a plain credential lookup.
type UserService interface {
	// Register creates a user with a bcrypt-hashed password. A duplicate email
	// yields apperrors.ErrDuplicate.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate verifies credentials. Unknown email and wrong password are
	// indistinguishable to the caller: both yield apperrors.ErrValidation.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
