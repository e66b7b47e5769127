package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite links a user to a plan. Existence is the whole payload.
type Favorite struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_favorites_user_plan"`
	PlanID    uuid.UUID `gorm:"column:plan_id;type:uuid;not null;uniqueIndex:idx_favorites_user_plan"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
