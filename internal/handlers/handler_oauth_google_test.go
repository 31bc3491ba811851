package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	portssvc "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/services"
	"github.com/bukuusaha/bukuusaha_backend/internal/dto"
	"github.com/bukuusaha/bukuusaha_backend/internal/handlers"
	"github.com/bukuusaha/bukuusaha_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleUserInfo), args.Error(1)
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*MockGoogleOAuthService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, requestingUserRole domain.UserRole, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, requestingUserRole, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string, requestingUserRole domain.UserRole) error {
	args := m.Called(ctx, userID, requestingUserID, requestingUserRole)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

var errNetwork = errors.New("network unreachable")

// --- Test Suite ---
type GoogleOAuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockOAuthService *MockGoogleOAuthService
	mockUserService  *MockUserService
	mockTokenService *MockTokenService
	user             *domain.User
}

func (suite *GoogleOAuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockOAuthService = new(MockGoogleOAuthService)
	suite.mockUserService = new(MockUserService)
	suite.mockTokenService = new(MockTokenService)
	suite.user = &domain.User{
		UserID:       uuid.NewString(),
		Username:     "siti@example.com",
		FullName:     "Siti Rahma",
		Role:         domain.RoleUser,
		AuthProvider: "google",
	}

	cfg := &config.Config{
		JWTSecret: "test-secret-key-that-is-long-enough",
		// Keeps swagger routes out of the test router.
		IsProduction:           true,
		RefreshTokenCookieName: "rtid",
		RefreshTokenCookiePath: "/api/v1/auth",
	}
	services := &portssvc.ServiceContainer{
		User:               suite.mockUserService,
		TokenService:       suite.mockTokenService,
		GoogleOAuthHandler: suite.mockOAuthService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *GoogleOAuthHandlerTestSuite) serveCallback(body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/google/callback", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// expectTokenIssue wires the access/refresh token mocks for a successful sign-in.
func (suite *GoogleOAuthHandlerTestSuite) expectTokenIssue() {
	expiry := time.Now().Add(time.Hour)
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, suite.user).
		Return("access-token", expiry, nil).Once()
	suite.mockTokenService.On("GenerateRefreshToken", mock.Anything, suite.user).
		Return("raw-refresh-token", time.Now().Add(720*time.Hour), nil).Once()
	suite.mockUserService.On("UpdateRefreshToken", mock.Anything, suite.user.UserID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil).Once()
}

func (suite *GoogleOAuthHandlerTestSuite) googlePayload() *idtoken.Payload {
	return &idtoken.Payload{
		Subject: "google-sub-123",
		Claims: map[string]interface{}{
			"email":          "siti@example.com",
			"name":           "Siti Rahma",
			"email_verified": true,
		},
	}
}

// --- Test Cases ---

func (suite *GoogleOAuthHandlerTestSuite) TestLoginGoogle_RedirectsToConsentScreen() {
	suite.mockOAuthService.On("GenerateStateString", mock.Anything).
		Return("csrf-state", nil).Once()
	suite.mockOAuthService.On("GetGoogleLoginURL", mock.Anything, "csrf-state").
		Return("https://accounts.google.com/o/oauth2/auth?state=csrf-state").Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/auth/google/login", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusTemporaryRedirect, w.Code)
	suite.Equal("https://accounts.google.com/o/oauth2/auth?state=csrf-state", w.Header().Get("Location"))
	suite.mockOAuthService.AssertExpectations(suite.T())
}

func (suite *GoogleOAuthHandlerTestSuite) TestCallbackGoogle_IDTokenSuccess() {
	suite.mockOAuthService.On("ValidateGoogleIDToken", mock.Anything, "valid-id-token").
		Return(suite.googlePayload(), nil).Once()
	suite.mockUserService.On("FindOrCreateGoogleUser", mock.Anything, mock.MatchedBy(func(info domain.GoogleUserInfo) bool {
		return info.ID == "google-sub-123" && info.Email == "siti@example.com" && info.VerifiedEmail
	})).Return(suite.user, nil).Once()
	suite.expectTokenIssue()

	w := suite.serveCallback([]byte(`{"idToken":"valid-id-token"}`))

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "access-token")
	suite.mockOAuthService.AssertNotCalled(suite.T(), "ExchangeCodeForToken", mock.Anything, mock.Anything)
	suite.mockOAuthService.AssertExpectations(suite.T())
	suite.mockUserService.AssertExpectations(suite.T())
	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *GoogleOAuthHandlerTestSuite) TestCallbackGoogle_CodeExchangeSuccess() {
	exchanged := (&oauth2.Token{AccessToken: "google-access"}).
		WithExtra(map[string]interface{}{"id_token": "exchanged-id-token"})
	suite.mockOAuthService.On("ExchangeCodeForToken", mock.Anything, "auth-code").
		Return(exchanged, nil).Once()
	suite.mockOAuthService.On("ValidateGoogleIDToken", mock.Anything, "exchanged-id-token").
		Return(suite.googlePayload(), nil).Once()
	suite.mockUserService.On("FindOrCreateGoogleUser", mock.Anything, mock.AnythingOfType("domain.GoogleUserInfo")).
		Return(suite.user, nil).Once()
	suite.expectTokenIssue()

	w := suite.serveCallback([]byte(`{"code":"auth-code"}`))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockOAuthService.AssertNotCalled(suite.T(), "GetUserInfo", mock.Anything, mock.Anything)
	suite.mockOAuthService.AssertExpectations(suite.T())
	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *GoogleOAuthHandlerTestSuite) TestCallbackGoogle_CodeWithoutIDTokenFallsBackToUserInfo() {
	exchanged := &oauth2.Token{AccessToken: "google-access"}
	suite.mockOAuthService.On("ExchangeCodeForToken", mock.Anything, "auth-code").
		Return(exchanged, nil).Once()
	suite.mockOAuthService.On("GetUserInfo", mock.Anything, exchanged).
		Return(&domain.GoogleUserInfo{
			ID:            "google-sub-123",
			Email:         "siti@example.com",
			VerifiedEmail: true,
			Name:          "Siti Rahma",
		}, nil).Once()
	suite.mockUserService.On("FindOrCreateGoogleUser", mock.Anything, mock.MatchedBy(func(info domain.GoogleUserInfo) bool {
		return info.ID == "google-sub-123"
	})).Return(suite.user, nil).Once()
	suite.expectTokenIssue()

	w := suite.serveCallback([]byte(`{"code":"auth-code"}`))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockOAuthService.AssertNotCalled(suite.T(), "ValidateGoogleIDToken", mock.Anything, mock.Anything)
	suite.mockOAuthService.AssertExpectations(suite.T())
}

func (suite *GoogleOAuthHandlerTestSuite) TestCallbackGoogle_InvalidCode() {
	suite.mockOAuthService.On("ExchangeCodeForToken", mock.Anything, "bad-code").
		Return(nil, errNetwork).Once()

	w := suite.serveCallback([]byte(`{"code":"bad-code"}`))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "FindOrCreateGoogleUser", mock.Anything, mock.Anything)
}

func (suite *GoogleOAuthHandlerTestSuite) TestCallbackGoogle_InvalidIDToken() {
	suite.mockOAuthService.On("ValidateGoogleIDToken", mock.Anything, "forged").
		Return(nil, errNetwork).Once()

	w := suite.serveCallback([]byte(`{"idToken":"forged"}`))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "FindOrCreateGoogleUser", mock.Anything, mock.Anything)
}

func (suite *GoogleOAuthHandlerTestSuite) TestCallbackGoogle_EmptyBodyRejected() {
	w := suite.serveCallback([]byte(`{}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockOAuthService.AssertNotCalled(suite.T(), "ValidateGoogleIDToken", mock.Anything, mock.Anything)
	suite.mockOAuthService.AssertNotCalled(suite.T(), "ExchangeCodeForToken", mock.Anything, mock.Anything)
}

func (suite *GoogleOAuthHandlerTestSuite) TestCallbackGoogle_MissingEmailClaim() {
	payload := &idtoken.Payload{
		Subject: "google-sub-123",
		Claims:  map[string]interface{}{"name": "Siti Rahma"},
	}
	suite.mockOAuthService.On("ValidateGoogleIDToken", mock.Anything, "no-email-token").
		Return(payload, nil).Once()

	w := suite.serveCallback([]byte(`{"idToken":"no-email-token"}`))

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "FindOrCreateGoogleUser", mock.Anything, mock.Anything)
}

func TestGoogleOAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GoogleOAuthHandlerTestSuite))
}
