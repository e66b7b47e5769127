package plans

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
	"github.com/cron6502/plansmaisons-backend/pkg/enums"
)

func setupPlansTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	housePlans := `
CREATE TABLE IF NOT EXISTS house_plans (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  style TEXT NOT NULL,
  bedrooms INTEGER NOT NULL,
  bathrooms INTEGER NOT NULL,
  floor_area REAL NOT NULL,
  floors INTEGER NOT NULL,
  garages INTEGER NOT NULL,
  has_pool INTEGER NOT NULL DEFAULT 0,
  estimated_budget NUMERIC NOT NULL,
  price NUMERIC NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  images TEXT,
  plans_2d TEXT,
  model_3d TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(housePlans).Error)

	return db
}

func insertPlan(t *testing.T, db *gorm.DB, plan models.HousePlan) models.HousePlan {
	t.Helper()
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	if plan.Title == "" {
		plan.Title = "Maison " + plan.ID.String()[:8]
	}
	if plan.Style == "" {
		plan.Style = enums.PlanStyleModern
	}
	require.NoError(t, db.Create(&plan).Error)
	return plan
}

func intPtr(v int) *int             { return &v }
func boolPtr(v bool) *bool          { return &v }
func float64Ptr(v float64) *float64 { return &v }
func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}
func stylePtr(v enums.PlanStyle) *enums.PlanStyle { return &v }

func TestSearchUnfilteredReturnsNewestFirst(t *testing.T) {
	db := setupPlansTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	older := insertPlan(t, db, models.HousePlan{CreatedAt: time.Now().Add(-time.Hour)})
	newer := insertPlan(t, db, models.HousePlan{CreatedAt: time.Now()})

	records, err := repo.Search(ctx, NewSearchFilters())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, older.ID, records[1].ID)
}

func TestSearchAppliesBoundsConjunctively(t *testing.T) {
	db := setupPlansTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	insertPlan(t, db, models.HousePlan{Bedrooms: 2, Price: decimal.NewFromInt(150000)})
	match := insertPlan(t, db, models.HousePlan{Bedrooms: 4, Price: decimal.NewFromInt(180000)})
	insertPlan(t, db, models.HousePlan{Bedrooms: 3, Price: decimal.NewFromInt(250000)})

	records, err := repo.Search(ctx, SearchFilters{
		MinBedrooms: intPtr(3),
		MaxPrice:    decimalPtr(200000),
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, match.ID, records[0].ID)
}

func TestSearchPoolFlagDistinguishesUnsetFromFalse(t *testing.T) {
	db := setupPlansTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	withPool := insertPlan(t, db, models.HousePlan{HasPool: true})
	withoutPool := insertPlan(t, db, models.HousePlan{HasPool: false})

	records, err := repo.Search(ctx, NewSearchFilters())
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = repo.Search(ctx, SearchFilters{HasPool: boolPtr(false)})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, withoutPool.ID, records[0].ID)

	records, err = repo.Search(ctx, SearchFilters{HasPool: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, withPool.ID, records[0].ID)
}

func TestSearchStyleAndFloorsExactMatch(t *testing.T) {
	db := setupPlansTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	colonial := insertPlan(t, db, models.HousePlan{Style: enums.PlanStyleColonial, Floors: 2})
	insertPlan(t, db, models.HousePlan{Style: enums.PlanStyleModern, Floors: 1})
	insertPlan(t, db, models.HousePlan{Style: enums.PlanStyleColonial, Floors: 3})

	records, err := repo.Search(ctx, SearchFilters{
		Style:  stylePtr(enums.PlanStyleColonial),
		Floors: intPtr(2),
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, colonial.ID, records[0].ID)
}

func TestSearchContradictoryBoundsYieldEmptySet(t *testing.T) {
	db := setupPlansTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	insertPlan(t, db, models.HousePlan{Bedrooms: 3})

	records, err := repo.Search(ctx, SearchFilters{
		MinBedrooms: intPtr(5),
		MaxBedrooms: intPtr(2),
	})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSearchFloorAreaBounds(t *testing.T) {
	db := setupPlansTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	insertPlan(t, db, models.HousePlan{FloorArea: 90})
	mid := insertPlan(t, db, models.HousePlan{FloorArea: 140.5})
	insertPlan(t, db, models.HousePlan{FloorArea: 220})

	records, err := repo.Search(ctx, SearchFilters{
		MinFloorArea: float64Ptr(100),
		MaxFloorArea: float64Ptr(200),
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, mid.ID, records[0].ID)
}

func TestFindByID(t *testing.T) {
	db := setupPlansTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	plan := insertPlan(t, db, models.HousePlan{Bedrooms: 5})

	found, err := repo.FindByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, found.ID)
	assert.Equal(t, 5, found.Bedrooms)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdatePrice(t *testing.T) {
	db := setupPlansTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	plan := insertPlan(t, db, models.HousePlan{Price: decimal.NewFromInt(100000)})

	updated, err := repo.UpdatePrice(ctx, plan.ID, decimal.NewFromInt(120000))
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(120000)))

	_, err = repo.UpdatePrice(ctx, uuid.New(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
