package dto

// RegisterRequest defines the data needed to sign up a new user.
type RegisterRequest struct {
	Username     string  `json:"username" binding:"required,min=3,max=64"`
	Password     string  `json:"password" binding:"required,min=8"`
	FullName     string  `json:"fullName" binding:"required"`
	BusinessName *string `json:"businessName"`
}

// LoginRequest defines the credentials for a local sign-in.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the access token for a successful sign-in. The
// refresh token travels as an HTTP-only cookie, never in the body.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// RefreshTokenResponse carries the rotated access token.
type RefreshTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// GoogleCallbackRequest completes Google sign-in. Clients send either the ID
// token obtained through Google's SDK or the authorization code from the
// redirect flow; the code is exchanged server-side.
type GoogleCallbackRequest struct {
	IDToken string `json:"idToken" binding:"required_without=Code"`
	Code    string `json:"code" binding:"required_without=IDToken"`
}
