package dto

import (
	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
)

// UserResponse defines the profile data returned for a user.
type UserResponse struct {
	UserID       string  `json:"userID"`
	Username     string  `json:"username"`
	FullName     string  `json:"fullName"`
	BusinessName *string `json:"businessName,omitempty"`
	Role         string  `json:"role"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Username:     user.Username,
		FullName:     user.FullName,
		BusinessName: user.BusinessName,
		Role:         string(user.Role),
	}
}

// UpdateUserRequest defines the profile fields a user may patch.
// Pointers distinguish omitted fields from zero-value updates.
type UpdateUserRequest struct {
	FullName     *string `json:"fullName"`
	BusinessName *string `json:"businessName"`
}

// ListUsersParams defines query parameters for listing users (admin only).
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
