package plans

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/cron6502/plansmaisons-backend/pkg/enums"
)

func TestNewSearchFiltersHasNoPredicates(t *testing.T) {
	filters := NewSearchFilters()
	assert.True(t, filters.IsZero())
	assert.Empty(t, filters.Predicates())
}

func TestMergeOverwritesOnlySetFields(t *testing.T) {
	base := SearchFilters{
		MinBedrooms: intPtr(2),
		MaxPrice:    decimalPtr(300000),
		HasPool:     boolPtr(true),
	}

	merged := base.Merge(SearchFilters{
		MinBedrooms: intPtr(4),
		Floors:      intPtr(2),
	})

	assert.Equal(t, 4, *merged.MinBedrooms)
	assert.Equal(t, 2, *merged.Floors)
	assert.True(t, merged.MaxPrice.Equal(*decimalPtr(300000)))
	assert.True(t, *merged.HasPool)

	// The original value is untouched.
	assert.Equal(t, 2, *base.MinBedrooms)
	assert.Nil(t, base.Floors)
}

func TestMergeWithEmptyUpdateIsIdentity(t *testing.T) {
	base := SearchFilters{
		Style:       stylePtr(enums.PlanStyleColonial),
		MinBedrooms: intPtr(3),
	}
	merged := base.Merge(SearchFilters{})
	assert.Equal(t, base, merged)
}

func TestPredicatesCoverEverySetField(t *testing.T) {
	filters := SearchFilters{
		Style:        stylePtr(enums.PlanStyleModern),
		MinBedrooms:  intPtr(1),
		MaxBedrooms:  intPtr(4),
		MinBathrooms: intPtr(1),
		MaxBathrooms: intPtr(3),
		MinFloorArea: float64Ptr(80),
		MaxFloorArea: float64Ptr(250),
		Floors:       intPtr(2),
		Garages:      intPtr(1),
		HasPool:      boolPtr(false),
		MinBudget:    decimalPtr(100000),
		MaxBudget:    decimalPtr(400000),
		MinPrice:     decimalPtr(50000),
		MaxPrice:     decimalPtr(350000),
	}

	preds := filters.Predicates()
	assert.Len(t, preds, 14)

	byField := map[string][]Op{}
	for _, p := range preds {
		byField[p.Field] = append(byField[p.Field], p.Op)
	}
	assert.Equal(t, []Op{OpEq}, byField["style"])
	assert.Equal(t, []Op{OpGte, OpLte}, byField["bedrooms"])
	assert.Equal(t, []Op{OpGte, OpLte}, byField["bathrooms"])
	assert.Equal(t, []Op{OpGte, OpLte}, byField["floor_area"])
	assert.Equal(t, []Op{OpEq}, byField["floors"])
	assert.Equal(t, []Op{OpGte}, byField["garages"])
	assert.Equal(t, []Op{OpEq}, byField["has_pool"])
	assert.Equal(t, []Op{OpGte, OpLte}, byField["estimated_budget"])
	assert.Equal(t, []Op{OpGte, OpLte}, byField["price"])
}

func genPartialFilters() gopter.Gen {
	optInt := gen.PtrOf(gen.IntRange(0, 10))
	return gopter.CombineGens(optInt, optInt, optInt, gen.PtrOf(gen.Bool())).
		Map(func(values []interface{}) SearchFilters {
			// PtrOf hands an untyped nil through the interface slice when it
			// decides against a value, so the assertions must not panic.
			minBedrooms, _ := values[0].(*int)
			maxBedrooms, _ := values[1].(*int)
			floors, _ := values[2].(*int)
			hasPool, _ := values[3].(*bool)
			return SearchFilters{
				MinBedrooms: minBedrooms,
				MaxBedrooms: maxBedrooms,
				Floors:      floors,
				HasPool:     hasPool,
			}
		})
}

func TestGenPartialFiltersSurvivesNilSlots(t *testing.T) {
	// PtrOf leaves roughly half the slots nil, so a couple hundred samples
	// are certain to exercise the nil path through the mapping.
	params := gopter.DefaultGenParameters()
	filterGen := genPartialFilters()
	for i := 0; i < 200; i++ {
		value, ok := filterGen(params).Retrieve()
		if !ok {
			continue
		}
		_, isFilters := value.(SearchFilters)
		assert.True(t, isFilters)
	}
}

func TestMergeProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("merge is associative", prop.ForAll(
		func(a, b, c SearchFilters) bool {
			left := a.Merge(b).Merge(c)
			right := a.Merge(b.Merge(c))
			return assert.ObjectsAreEqual(left, right)
		},
		genPartialFilters(), genPartialFilters(), genPartialFilters(),
	))

	properties.Property("merging a filter into itself is a no-op", prop.ForAll(
		func(a SearchFilters) bool {
			return assert.ObjectsAreEqual(a, a.Merge(a))
		},
		genPartialFilters(),
	))

	properties.TestingRun(t)
}
