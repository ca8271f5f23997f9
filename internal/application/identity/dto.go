package identity

import (
	"time"

	"github.com/kosmanager/backend/internal/domain/identity"
)

// RegisterRequest carries the data needed to create an owner account
type RegisterRequest struct {
	FullName string
	Email    string
	Password string
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string
	Password string
}

// UserResponse is the outward representation of an owner account
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ToUserResponse converts a domain user to its response form
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FullName:  user.FullName,
		Plan:      string(user.Plan),
		CreatedAt: user.CreatedAt,
	}
}
