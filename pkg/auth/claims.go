package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cron6502/plansmaisons-backend/pkg/enums"
)

// Token purposes distinguish full access tokens from the short-lived token
// issued at sign-up for the verification step.
const (
	PurposeAccess = "access"
	PurposeSignup = "signup"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID uuid.UUID
	Role   enums.UserRole
	JTI    string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID  uuid.UUID      `json:"user_id"`
	Role    enums.UserRole `json:"role"`
	Purpose string         `json:"purpose"`
	jwt.RegisteredClaims
}
