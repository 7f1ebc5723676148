package dto

import "time"

// SignupRequest body para POST /api/auth/signup.
type SignupRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Username        string `json:"username" validate:"required,min=3,max=40"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone"`
	BusinessName    string `json:"business_name"`
	Whatsapp        string `json:"whatsapp"`
	Referral        string `json:"referral"` // código de invitación, opcional
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest body para PUT /api/profile/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// UserResponse usuario en respuestas (nunca incluye el hash).
type UserResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	BusinessName string    `json:"business_name,omitempty"`
	Whatsapp     string    `json:"whatsapp,omitempty"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginResponse token + usuario para el frontend.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
