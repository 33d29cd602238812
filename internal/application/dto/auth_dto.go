package dto

import "time"

// RegisterRequest input for generic user self-registration (password is plain
// text here, hashed in the use case).
type RegisterRequest struct {
	FullName          string `json:"full_name" validate:"required,max=150"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required"`
	Role              string `json:"role" validate:"required"`
	Password          string `json:"password" validate:"required,min=8,max=124"`
	ConfirmedPassword string `json:"confirmed_password" validate:"required"`
}

// LoginRequest input for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest input for rotating the access token.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// LogoutRequest blacklists the refresh token.
type LogoutRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// TokenPairResponse the access/refresh pair returned on login and refresh.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// UserResponse a user without the password hash.
type UserResponse struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	EmployerID string    `json:"employer_id,omitempty"`
	IsVerified bool      `json:"is_verified"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpdateUserRequest partial self-update. Nil means "leave unchanged".
type UpdateUserRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Password *string `json:"password" validate:"omitempty,min=8,max=124"`
}
