package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoicerhq/invoicer_backend/internal/apperrors"
	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
	portsrepo "github.com/invoicerhq/invoicer_backend/internal/core/ports/repositories"
	portssvc "github.com/invoicerhq/invoicer_backend/internal/core/ports/services"
	"github.com/invoicerhq/invoicer_backend/internal/core/services"
	"github.com/invoicerhq/invoicer_backend/internal/dto"
	"github.com/invoicerhq/invoicer_backend/internal/utils"
)

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Ensure mock implements the interface
var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserService
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
	suite.ctx = context.Background()
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegister_HashesPassword() {
	req := dto.RegisterRequest{Email: "dana@example.com", Password: "correct horse"}

	suite.mockRepo.On("CreateUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		// The stored password must be a verifiable hash, never the plaintext.
		return u.Email == req.Email &&
			u.Password != req.Password &&
			utils.CheckPasswordHash(req.Password, u.Password)
	})).Return(&domain.User{ID: 1, Email: req.Email}, nil).Once()

	user, err := suite.service.Register(suite.ctx, req)

	suite.NoError(err)
	suite.Equal(int64(1), user.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	req := dto.RegisterRequest{Email: "dana@example.com", Password: "correct horse"}
	suite.mockRepo.On("CreateUser", suite.ctx, mock.AnythingOfType("domain.User")).Return(nil, apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(suite.ctx, req)

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)
	stored := &domain.User{ID: 1, Email: "dana@example.com", Password: hash}
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "dana@example.com").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(suite.ctx, "dana@example.com", "correct horse")

	suite.NoError(err)
	suite.Equal(stored, user)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)
	stored := &domain.User{ID: 1, Email: "dana@example.com", Password: hash}
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "dana@example.com").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(suite.ctx, "dana@example.com", "wrong horse")

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmailIndistinguishable() {
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(suite.ctx, "nobody@example.com", "whatever")

	suite.Nil(user)
	// Unknown email surfaces exactly like a wrong password.
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
