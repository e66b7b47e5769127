package favorites

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FavoriteDTO pairs a favorited plan with when it was saved.
type FavoriteDTO struct {
	PlanID      uuid.UUID       `json:"plan_id"`
	Title       string          `json:"title"`
	Style       string          `json:"style"`
	Bedrooms    int             `json:"bedrooms"`
	Bathrooms   int             `json:"bathrooms"`
	FloorArea   float64         `json:"floor_area"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	FavoritedAt time.Time       `json:"favorited_at"`
}

// FavoritesPageDTO is one cursor page of favorites.
type FavoritesPageDTO struct {
	Items      []FavoriteDTO `json:"items"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

// ToggleResultDTO reports the state after a toggle.
type ToggleResultDTO struct {
	PlanID    uuid.UUID `json:"plan_id"`
	Favorited bool      `json:"favorited"`
}

func (r favoritePlanRecord) toDTO() FavoriteDTO {
	return FavoriteDTO{
		PlanID:      r.HousePlan.ID,
		Title:       r.HousePlan.Title,
		Style:       r.HousePlan.Style.String(),
		Bedrooms:    r.HousePlan.Bedrooms,
		Bathrooms:   r.HousePlan.Bathrooms,
		FloorArea:   r.HousePlan.FloorArea,
		Price:       r.HousePlan.Price,
		Images:      r.HousePlan.Images,
		FavoritedAt: r.FavoriteCreatedAt,
	}
}
