package plans

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
)

// PlanDTO is the wire representation of a house plan.
type PlanDTO struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Style           string          `json:"style"`
	Bedrooms        int             `json:"bedrooms"`
	Bathrooms       int             `json:"bathrooms"`
	FloorArea       float64         `json:"floor_area"`
	Floors          int             `json:"floors"`
	Garages         int             `json:"garages"`
	HasPool         bool            `json:"has_pool"`
	EstimatedBudget decimal.Decimal `json:"estimated_budget"`
	Price           decimal.Decimal `json:"price"`
	Description     string          `json:"description"`
	Images          []string        `json:"images"`
	Plans2D         []string        `json:"plans_2d"`
	Model3D         *string         `json:"model_3d,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// SearchResultDTO is the payload for one search execution.
type SearchResultDTO struct {
	Plans []PlanDTO `json:"plans"`
	Total int       `json:"total"`
}

// UpdatePriceRequest carries the new listed price for a plan.
type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

func toDTO(plan models.HousePlan) PlanDTO {
	return PlanDTO{
		ID:              plan.ID,
		Title:           plan.Title,
		Style:           plan.Style.String(),
		Bedrooms:        plan.Bedrooms,
		Bathrooms:       plan.Bathrooms,
		FloorArea:       plan.FloorArea,
		Floors:          plan.Floors,
		Garages:         plan.Garages,
		HasPool:         plan.HasPool,
		EstimatedBudget: plan.EstimatedBudget,
		Price:           plan.Price,
		Description:     plan.Description,
		Images:          plan.Images,
		Plans2D:         plan.Plans2D,
		Model3D:         plan.Model3D,
		CreatedAt:       plan.CreatedAt,
	}
}

func toDTOs(records []models.HousePlan) []PlanDTO {
	dtos := make([]PlanDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, toDTO(record))
	}
	return dtos
}
