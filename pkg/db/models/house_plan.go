package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cron6502/plansmaisons-backend/pkg/enums"
)

// HousePlan represents a catalog listing. Everything except the listed price
// is read-only through the API; price edits are restricted to elevated roles.
type HousePlan struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title           string          `gorm:"column:title;not null"`
	Style           enums.PlanStyle `gorm:"column:style;type:text;not null"`
	Bedrooms        int             `gorm:"column:bedrooms;not null"`
	Bathrooms       int             `gorm:"column:bathrooms;not null"`
	FloorArea       float64         `gorm:"column:floor_area;type:numeric(8,2);not null"`
	Floors          int             `gorm:"column:floors;not null;default:1"`
	Garages         int             `gorm:"column:garages;not null;default:0"`
	HasPool         bool            `gorm:"column:has_pool;not null;default:false"`
	EstimatedBudget decimal.Decimal `gorm:"column:estimated_budget;type:numeric(12,2);not null"`
	Price           decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Description     string          `gorm:"column:description;not null;default:''"`
	Images          []string        `gorm:"column:images;type:jsonb;serializer:json"`
	Plans2D         []string        `gorm:"column:plans_2d;type:jsonb;serializer:json"`
	Model3D         *string         `gorm:"column:model_3d"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
