package auth

import (
	"github.com/cron6502/plansmaisons-backend/internal/users"
)

// SignupRequest creates an unverified account and sends the code email.
type SignupRequest struct {
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Role      string `json:"role"`
}

// SignupResponse carries the short-lived token gating the verify endpoint.
type SignupResponse struct {
	SignupToken string        `json:"signup_token"`
	User        users.UserDTO `json:"user"`
}

// VerifyRequest submits the emailed code. Pasted carries clipboard input
// which follows the truncate-then-reject normalization rules.
type VerifyRequest struct {
	Code   string `json:"code"`
	Pasted bool   `json:"pasted"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse is returned by verify, login, and refresh.
type SessionResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         users.UserDTO `json:"user"`
}

// RefreshRequest rotates a session.
type RefreshRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}
