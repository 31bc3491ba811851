package domain

import "time"

// UserRole controls row-level visibility. Admins may read rows owned by any
// user; regular users only see their own.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// AuthProvider identifies how a user authenticates.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User represents a registered owner of bookkeeping data. It doubles as the
// business profile: FullName and BusinessName are what the UMKM owner shows
// on reports.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Username     string   `json:"username"`
	PasswordHash *string  `json:"-"` // nil for OAuth-only users
	FullName     string   `json:"fullName"`
	BusinessName *string  `json:"businessName,omitempty"`
	Role         UserRole `json:"role"`

	AuthProvider   string  `json:"authProvider"`
	ProviderUserID *string `json:"-"` // Subject claim from the external provider

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete

	// Refresh token state; only the SHA-256 hash is ever stored.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// IsAdmin reports whether the user may bypass owner scoping.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// GoogleUserInfo holds the profile fields returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
