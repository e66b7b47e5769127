package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
)

// Selection is the set of add-on service ids chosen for a quote.
type Selection map[uuid.UUID]struct{}

// NewSelection builds a selection from explicit ids.
func NewSelection(ids ...uuid.UUID) Selection {
	sel := make(Selection, len(ids))
	for _, id := range ids {
		sel[id] = struct{}{}
	}
	return sel
}

// DefaultSelection returns the subset of the catalog flagged as selected by
// default.
func DefaultSelection(catalog []models.AdditionalService) Selection {
	sel := make(Selection)
	for _, svc := range catalog {
		if svc.IsDefault {
			sel[svc.ID] = struct{}{}
		}
	}
	return sel
}

// Toggle flips membership of id: absent ids are added, present ids removed.
// Toggling the same id twice restores the original selection.
func (s Selection) Toggle(id uuid.UUID) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// Contains reports membership.
func (s Selection) Contains(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the selected ids in unspecified order.
func (s Selection) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

// Total computes base price plus the price of every selected service found in
// the catalog. Zero-priced services are "included" and never change the sum,
// selected ids absent from the catalog contribute nothing.
func Total(basePrice decimal.Decimal, catalog []models.AdditionalService, selected Selection) decimal.Decimal {
	total := basePrice
	for _, svc := range catalog {
		if selected.Contains(svc.ID) {
			total = total.Add(svc.Price)
		}
	}
	return total
}
