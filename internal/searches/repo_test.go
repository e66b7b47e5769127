package searches

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
)

func setupSearchesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	savedSearches := `
CREATE TABLE IF NOT EXISTS saved_searches (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL,
  filters TEXT NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(savedSearches).Error)

	return db
}

func TestCreateAndListByUser(t *testing.T) {
	db := setupSearchesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	older := models.SavedSearch{
		UserID:    userID,
		Name:      "3 chambres",
		Filters:   json.RawMessage(`{"min_bedrooms":3}`),
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := models.SavedSearch{
		UserID:    userID,
		Name:      "Avec piscine",
		Filters:   json.RawMessage(`{"has_pool":true}`),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, &older))
	require.NoError(t, repo.Create(ctx, &newer))
	assert.NotEqual(t, uuid.Nil, older.ID)

	records, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Avec piscine", records[0].Name)
	assert.Equal(t, "3 chambres", records[1].Name)

	records, err = repo.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDeleteScopedToOwner(t *testing.T) {
	db := setupSearchesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	record := models.SavedSearch{
		UserID:  owner,
		Name:    "Budget serre",
		Filters: json.RawMessage(`{"max_budget":"250000"}`),
	}
	require.NoError(t, repo.Create(ctx, &record))

	// Another user cannot delete it.
	err := repo.Delete(ctx, uuid.New(), record.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.Delete(ctx, owner, record.ID))

	err = repo.Delete(ctx, owner, record.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
