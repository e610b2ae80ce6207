package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/invoicerhq/invoicer_backend/internal/apperrors"
	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	portsrepo "github.com/invoicerhq/invoicer_backend/internal/core/ports/repositories"
	portssvc "github.com/invoicerhq/invoicer_backend/internal/core/ports/services"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
	"github.com/invoicerhq/invoicer_backend/internal/utils"
)

// userService implements the UserService interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo portsrepo.UserRepository) portssvc.UserService {
	return &userService{userRepo: repo}
}

// Ensure userService implements the UserService interface
var _ portssvc.UserService = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.CreateUser(ctx, domain.User{
		Email:    req.Email,
		Password: hashed,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to register user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.Int64("user_id", created.ID))
	return created, nil
}

// Authenticate verifies credentials. Unknown email and wrong password both
// collapse into ErrValidation so the response leaks nothing about which
// emails are registered.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrValidation)
		}
		s.LogError(ctx, err, "Failed to look up user", slog.String("email", email))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrValidation)
	}

	s.LogInfo(ctx, "User authenticated", slog.Int64("user_id", user.ID))
	return user, nil
}
