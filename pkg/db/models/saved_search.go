package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SavedSearch is a named snapshot of a filter set owned by one user. Filters
// are stored as the JSON shape of the search filter model.
type SavedSearch struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index"`
	Name      string          `gorm:"column:name;not null"`
	Filters   json.RawMessage `gorm:"column:filters;type:jsonb;not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}
