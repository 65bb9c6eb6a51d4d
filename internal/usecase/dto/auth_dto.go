package dto

import "github.com/senda-infinita/internal/domain"

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the issued token and the authenticated identity.
type AuthResponse struct {
	Token string          `json:"token"`
	User  domain.AuthUser `json:"user"`
}

// UpdateUserRoleRequest is the admin role change payload.
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER ADMIN"`
}
