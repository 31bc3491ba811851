package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/apperrors"
	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	portsrepo "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/repositories"
	portssvc "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/services"
	"github.com/bukuusaha/bukuusaha_backend/internal/core/services"
	"github.com/bukuusaha/bukuusaha_backend/internal/dto"
	"github.com/bukuusaha/bukuusaha_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	businessName := "Warung Bu Sri"
	req := dto.RegisterRequest{
		Username:     "busri",
		Password:     "password123",
		FullName:     "Sri Rahayu",
		BusinessName: &businessName,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, req.Username).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == req.Username &&
			user.FullName == req.FullName &&
			user.Role == domain.RoleUser &&
			user.AuthProvider == domain.ProviderLocal &&
			user.PasswordHash != nil && *user.PasswordHash != req.Password
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.UserID)
	suite.Equal(req.Username, created.Username)
	suite.Equal(req.FullName, created.FullName)
	suite.Require().NotNil(created.BusinessName)
	suite.Equal(businessName, *created.BusinessName)
	suite.Require().NotNil(created.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, *created.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "busri",
		Password: "password123",
		FullName: "Sri Rahayu",
	}
	existing := &domain.User{UserID: uuid.NewString(), Username: req.Username}

	suite.mockUserRepo.On("FindUserByUsername", ctx, req.Username).Return(existing, nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

// --- GetUserByID Tests ---

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ListUsers Tests ---

func (suite *UserServiceTestSuite) TestListUsers_Success() {
	ctx := context.Background()
	limit, offset := 10, 0
	expected := []domain.User{{UserID: uuid.NewString()}, {UserID: uuid.NewString()}}

	suite.mockUserRepo.On("FindUsers", ctx, limit, offset).Return(expected, nil).Once()

	users, err := suite.service.ListUsers(ctx, domain.RoleAdmin, limit, offset)

	suite.Require().NoError(err)
	suite.Len(users, len(expected))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_NonAdminForbidden() {
	ctx := context.Background()

	users, err := suite.service.ListUsers(ctx, domain.RoleUser, 10, 0)

	suite.Require().Error(err)
	suite.Nil(users)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUsers", mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdateUser Tests ---

func (suite *UserServiceTestSuite) TestUpdateUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.User{UserID: userID, FullName: "Sri Rahayu"}
	newName := "Sri Rahayu Wati"

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.UserID == userID && user.FullName == newName
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{FullName: &newName}, userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.FullName)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_NoChangeSkipsWrite() {
	ctx := context.Background()
	userID := uuid.NewString()
	sameName := "Sri Rahayu"
	existing := &domain.User{UserID: userID, FullName: sameName}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{FullName: &sameName}, userID)

	suite.Require().NoError(err)
	suite.Equal(sameName, updated.FullName)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

// --- DeleteUser Tests ---

func (suite *UserServiceTestSuite) TestDeleteUser_SelfAllowed() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), userID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, userID, domain.RoleUser)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_OtherUserForbidden() {
	ctx := context.Background()

	err := suite.service.DeleteUser(ctx, uuid.NewString(), uuid.NewString(), domain.RoleUser)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "busri", PasswordHash: &hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, user.Username, password)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, authenticated.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "busri", PasswordHash: &hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, user.Username, "wrong-password")

	suite.Require().Error(err)
	suite.Nil(authenticated)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, "nobody", "password123")

	suite.Require().Error(err)
	suite.Nil(authenticated)
	// Unknown usernames must look identical to bad passwords.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthOnlyUserRejected() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Username: "busri", PasswordHash: nil}

	suite.mockUserRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, user.Username, "password123")

	suite.Require().Error(err)
	suite.Nil(authenticated)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- FindOrCreateGoogleUser Tests ---

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ReturnsExisting() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{ID: "google-sub-1", Email: "sri@example.com", Name: "Sri Rahayu"}
	existing := &domain.User{UserID: uuid.NewString(), Username: info.Email, AuthProvider: domain.ProviderGoogle}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, info.ID).Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesOnFirstSignIn() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{ID: "google-sub-2", Email: "sri@example.com", Name: "Sri Rahayu"}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, info.ID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == info.Email &&
			user.FullName == info.Name &&
			user.AuthProvider == domain.ProviderGoogle &&
			user.ProviderUserID != nil && *user.ProviderUserID == info.ID &&
			user.PasswordHash == nil
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_RepoError() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{ID: "google-sub-3", Email: "sri@example.com"}
	expectedErr := assert.AnError

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, info.ID).Return(nil, expectedErr).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Test Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
