package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	portssvc "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/services"
	"github.com/bukuusaha/bukuusaha_backend/internal/dto"
	"github.com/bukuusaha/bukuusaha_backend/internal/middleware"
	"github.com/bukuusaha/bukuusaha_backend/internal/platform/config"

	"github.com/gin-gonic/gin"
)

// GoogleOAuthHandler handles Google sign-in. The callback accepts either an
// ID token obtained through Google's SDK or the authorization code from the
// redirect flow; both paths resolve the local user and issue the
// application's own tokens.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	authHandler        *AuthHandler
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	cfg *config.Config,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
		authHandler:        NewAuthHandler(userService, tokenService, cfg),
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuthHandler, services.User, services.TokenService, cfg)

	google := rg.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.LoginGoogle)
		google.POST("/callback", h.CallbackGoogle)
	}
}

// LoginGoogle godoc
// @Summary Start Google sign-in
// @Description Redirects the browser to Google's consent screen.
// @Tags auth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	// The state cookie is checked by the frontend before posting the ID token.
	c.SetCookie("oauth_state", state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// CallbackGoogle godoc
// @Summary Complete Google sign-in
// @Description Accepts a Google ID token or an authorization code, resolves the local user (creating it on first sign-in) and returns application tokens.
// @Tags auth
// @Accept json
// @Produce json
// @Param callback body dto.GoogleCallbackRequest true "Google ID token or authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [post]
func (h *GoogleOAuthHandler) CallbackGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.GoogleCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	info, ok := h.resolveGoogleIdentity(c, req)
	if !ok {
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, *info)
	if err != nil {
		logger.Error("Failed to resolve Google user", slog.String("error", err.Error()), slog.String("google_user_id", info.ID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process Google sign-in"})
		return
	}

	accessToken, expiresAt, err := h.authHandler.issueTokens(c, user)
	if err != nil {
		logger.Error("Failed to issue tokens after Google sign-in", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     accessToken,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		User:      dto.ToUserResponse(user),
	})
}

// resolveGoogleIdentity turns the callback request into a Google profile.
// An authorization code is exchanged first; the ID token in the exchange
// response is preferred, with the userinfo endpoint as fallback when Google
// omits it. On failure the error response has already been written and ok is
// false.
func (h *GoogleOAuthHandler) resolveGoogleIdentity(c *gin.Context, req dto.GoogleCallbackRequest) (*domain.GoogleUserInfo, bool) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	idTokenString := req.IDToken
	if idTokenString == "" {
		token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
		if err != nil {
			logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authorization code"})
			return nil, false
		}

		exchanged, _ := token.Extra("id_token").(string)
		if exchanged == "" {
			info, err := h.googleOAuthService.GetUserInfo(ctx, token)
			if err != nil {
				logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
				c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve user information from Google"})
				return nil, false
			}
			return info, true
		}
		idTokenString = exchanged
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return nil, false
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || payload.Subject == "" {
		logger.Error("Essential claims missing from Google ID token", slog.Any("claims", payload.Claims))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Essential user information missing from Google token"})
		return nil, false
	}

	return &domain.GoogleUserInfo{
		ID:            payload.Subject,
		Email:         email,
		VerifiedEmail: verified,
		Name:          name,
		Picture:       picture,
	}, true
}
