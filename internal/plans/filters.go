package plans

import (
	"github.com/shopspring/decimal"

	"github.com/cron6502/plansmaisons-backend/pkg/enums"
)

// Op is a comparison operator applied to one plan column.
type Op string

const (
	OpEq  Op = "eq"
	OpGte Op = "gte"
	OpLte Op = "lte"
)

// Predicate is one (column, operator, value) constraint. Predicates from a
// single filter set always combine conjunctively.
type Predicate struct {
	Field string
	Op    Op
	Value any
}

// SearchFilters is a sparse set of optional constraints on house plans. A nil
// field means "no constraint". No invariant couples the fields, a min above
// its max is legal and simply yields no results.
type SearchFilters struct {
	Style        *enums.PlanStyle `json:"style,omitempty"`
	MinBedrooms  *int             `json:"min_bedrooms,omitempty" validate:"omitempty,gte=0"`
	MaxBedrooms  *int             `json:"max_bedrooms,omitempty" validate:"omitempty,gte=0"`
	MinBathrooms *int             `json:"min_bathrooms,omitempty" validate:"omitempty,gte=0"`
	MaxBathrooms *int             `json:"max_bathrooms,omitempty" validate:"omitempty,gte=0"`
	MinFloorArea *float64         `json:"min_floor_area,omitempty" validate:"omitempty,gte=0"`
	MaxFloorArea *float64         `json:"max_floor_area,omitempty" validate:"omitempty,gte=0"`
	Floors       *int             `json:"floors,omitempty" validate:"omitempty,gte=0"`
	Garages      *int             `json:"garages,omitempty" validate:"omitempty,gte=0"`
	HasPool      *bool            `json:"has_pool,omitempty"`
	MinBudget    *decimal.Decimal `json:"min_budget,omitempty"`
	MaxBudget    *decimal.Decimal `json:"max_budget,omitempty"`
	MinPrice     *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice     *decimal.Decimal `json:"max_price,omitempty"`
}

// NewSearchFilters returns an all-unset filter value.
func NewSearchFilters() SearchFilters {
	return SearchFilters{}
}

// Merge returns a new filter with the set fields of update overwriting the
// receiver. Unset update fields keep their prior values.
func (f SearchFilters) Merge(update SearchFilters) SearchFilters {
	merged := f
	if update.Style != nil {
		merged.Style = update.Style
	}
	if update.MinBedrooms != nil {
		merged.MinBedrooms = update.MinBedrooms
	}
	if update.MaxBedrooms != nil {
		merged.MaxBedrooms = update.MaxBedrooms
	}
	if update.MinBathrooms != nil {
		merged.MinBathrooms = update.MinBathrooms
	}
	if update.MaxBathrooms != nil {
		merged.MaxBathrooms = update.MaxBathrooms
	}
	if update.MinFloorArea != nil {
		merged.MinFloorArea = update.MinFloorArea
	}
	if update.MaxFloorArea != nil {
		merged.MaxFloorArea = update.MaxFloorArea
	}
	if update.Floors != nil {
		merged.Floors = update.Floors
	}
	if update.Garages != nil {
		merged.Garages = update.Garages
	}
	if update.HasPool != nil {
		merged.HasPool = update.HasPool
	}
	if update.MinBudget != nil {
		merged.MinBudget = update.MinBudget
	}
	if update.MaxBudget != nil {
		merged.MaxBudget = update.MaxBudget
	}
	if update.MinPrice != nil {
		merged.MinPrice = update.MinPrice
	}
	if update.MaxPrice != nil {
		merged.MaxPrice = update.MaxPrice
	}
	return merged
}

// Predicates flattens the set fields into column constraints for the query
// layer. The boolean pool flag only contributes when explicitly set, so
// "unset" and "false" stay distinguishable.
func (f SearchFilters) Predicates() []Predicate {
	var preds []Predicate
	if f.Style != nil {
		preds = append(preds, Predicate{Field: "style", Op: OpEq, Value: f.Style.String()})
	}
	if f.MinBedrooms != nil {
		preds = append(preds, Predicate{Field: "bedrooms", Op: OpGte, Value: *f.MinBedrooms})
	}
	if f.MaxBedrooms != nil {
		preds = append(preds, Predicate{Field: "bedrooms", Op: OpLte, Value: *f.MaxBedrooms})
	}
	if f.MinBathrooms != nil {
		preds = append(preds, Predicate{Field: "bathrooms", Op: OpGte, Value: *f.MinBathrooms})
	}
	if f.MaxBathrooms != nil {
		preds = append(preds, Predicate{Field: "bathrooms", Op: OpLte, Value: *f.MaxBathrooms})
	}
	if f.MinFloorArea != nil {
		preds = append(preds, Predicate{Field: "floor_area", Op: OpGte, Value: *f.MinFloorArea})
	}
	if f.MaxFloorArea != nil {
		preds = append(preds, Predicate{Field: "floor_area", Op: OpLte, Value: *f.MaxFloorArea})
	}
	if f.Floors != nil {
		preds = append(preds, Predicate{Field: "floors", Op: OpEq, Value: *f.Floors})
	}
	if f.Garages != nil {
		preds = append(preds, Predicate{Field: "garages", Op: OpGte, Value: *f.Garages})
	}
	if f.HasPool != nil {
		preds = append(preds, Predicate{Field: "has_pool", Op: OpEq, Value: *f.HasPool})
	}
	if f.MinBudget != nil {
		preds = append(preds, Predicate{Field: "estimated_budget", Op: OpGte, Value: *f.MinBudget})
	}
	if f.MaxBudget != nil {
		preds = append(preds, Predicate{Field: "estimated_budget", Op: OpLte, Value: *f.MaxBudget})
	}
	if f.MinPrice != nil {
		preds = append(preds, Predicate{Field: "price", Op: OpGte, Value: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		preds = append(preds, Predicate{Field: "price", Op: OpLte, Value: *f.MaxPrice})
	}
	return preds
}

// IsZero reports whether no constraint is set.
func (f SearchFilters) IsZero() bool {
	return len(f.Predicates()) == 0
}
