package searches

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/cron6502/plansmaisons-backend/internal/plans"
	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
)

// CreateSavedSearchRequest names and snapshots a filter set.
type CreateSavedSearchRequest struct {
	Name    string              `json:"name" validate:"required,max=120"`
	Filters plans.SearchFilters `json:"filters"`
}

// SavedSearchDTO is the wire representation of one saved search.
type SavedSearchDTO struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Filters   plans.SearchFilters `json:"filters"`
	CreatedAt time.Time           `json:"created_at"`
}

func toDTO(record models.SavedSearch) (SavedSearchDTO, error) {
	var filters plans.SearchFilters
	if len(record.Filters) > 0 {
		if err := json.Unmarshal(record.Filters, &filters); err != nil {
			return SavedSearchDTO{}, err
		}
	}
	return SavedSearchDTO{
		ID:        record.ID,
		Name:      record.Name,
		Filters:   filters,
		CreatedAt: record.CreatedAt,
	}, nil
}
