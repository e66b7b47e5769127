package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/cron6502/plansmaisons-backend/pkg/enums"
)

// User represents the canonical identity entity. VerificationCode holds the
// pending 6-digit code between sign-up and verification and is cleared once
// the account is verified.
type User struct {
	ID               uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email            string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash     string         `gorm:"column:password_hash;not null"`
	FirstName        string         `gorm:"column:first_name;not null;default:''"`
	LastName         string         `gorm:"column:last_name;not null;default:''"`
	Role             enums.UserRole `gorm:"column:role;type:user_role;not null;default:'visitor'"`
	Verified         bool           `gorm:"column:verified;not null;default:false"`
	VerificationCode *string        `gorm:"column:verification_code;type:char(6)"`
	LastLoginAt      *time.Time     `gorm:"column:last_login_at"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
