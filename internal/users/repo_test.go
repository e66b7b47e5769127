package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
	"github.com/cron6502/plansmaisons-backend/pkg/enums"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  first_name TEXT NOT NULL DEFAULT '',
  last_name TEXT NOT NULL DEFAULT '',
  role TEXT NOT NULL DEFAULT 'visitor',
  verified INTEGER NOT NULL DEFAULT 0,
  verification_code TEXT,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(users).Error)

	return db
}

func createTestUser(t *testing.T, repo *Repository, email string) *models.User {
	t.Helper()
	code := "123456"
	user := &models.User{
		Email:            email,
		PasswordHash:     "$argon2id$stub",
		Role:             enums.UserRoleVisitor,
		VerificationCode: &code,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestCreateNormalizesEmail(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := createTestUser(t, repo, "  Marie.Dupont@Example.COM ")
	assert.Equal(t, "marie.dupont@example.com", user.Email)

	found, err := repo.FindByEmail(ctx, "MARIE.DUPONT@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestFindByEmailMissing(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMarkVerifiedClearsCode(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := createTestUser(t, repo, "user@example.com")
	require.NoError(t, repo.MarkVerified(ctx, user.ID))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, found.Verified)
	assert.Nil(t, found.VerificationCode)

	assert.ErrorIs(t, repo.MarkVerified(ctx, uuid.New()), gorm.ErrRecordNotFound)
}

func TestRefreshSignupOnlyTouchesUnverified(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := createTestUser(t, repo, "retry@example.com")
	require.NoError(t, repo.RefreshSignup(ctx, user.ID, "$argon2id$new", "654321"))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "$argon2id$new", found.PasswordHash)
	require.NotNil(t, found.VerificationCode)
	assert.Equal(t, "654321", *found.VerificationCode)

	// Once verified the row is no longer eligible.
	require.NoError(t, repo.MarkVerified(ctx, user.ID))
	require.NoError(t, repo.RefreshSignup(ctx, user.ID, "$argon2id$other", "111111"))

	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "$argon2id$new", found.PasswordHash)
}

func TestTouchLastLogin(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := createTestUser(t, repo, "login@example.com")
	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.TouchLastLogin(ctx, user.ID, at))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastLoginAt)
	assert.WithinDuration(t, at, *found.LastLoginAt, time.Second)
}
