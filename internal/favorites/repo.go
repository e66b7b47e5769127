package favorites

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
	"github.com/cron6502/plansmaisons-backend/pkg/pagination"
)

// Repository encapsulates favorite persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a favorites repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Toggle flips the favorite state for a user/plan pair and returns the new
// state. The insert ignores duplicates so concurrent toggles cannot create
// two rows for the same pair.
func (r *Repository) Toggle(ctx context.Context, userID, planID uuid.UUID) (bool, error) {
	if userID == uuid.Nil || planID == uuid.Nil {
		return false, gorm.ErrInvalidValue
	}

	insert := r.db.WithContext(ctx).
		Exec(`INSERT INTO favorites (id, user_id, plan_id, created_at) VALUES (?, ?, ?, ?) ON CONFLICT (user_id, plan_id) DO NOTHING`,
			uuid.New(), userID, planID, time.Now().UTC())
	if insert.Error != nil {
		return false, insert.Error
	}
	if insert.RowsAffected > 0 {
		return true, nil
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		Delete(&models.Favorite{}).
		Error; err != nil {
		return false, err
	}
	return false, nil
}

// IsFavorite reports whether the pair exists.
func (r *Repository) IsFavorite(ctx context.Context, userID, planID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		Count(&count).
		Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type favoritePlanRecord struct {
	FavoriteID        uuid.UUID `gorm:"column:favorite_id"`
	FavoriteCreatedAt time.Time `gorm:"column:favorite_created_at"`
	models.HousePlan  `gorm:"embedded"`
}

// ListPage returns a cursor-paginated page of the user's favorite plans,
// newest favorite first.
func (r *Repository) ListPage(ctx context.Context, userID uuid.UUID, cursor string, limit int) (FavoritesPageDTO, error) {
	normalizedLimit := pagination.NormalizeLimit(limit)
	limitWithBuffer := pagination.LimitWithBuffer(limit)
	decodedCursor, err := pagination.ParseCursor(strings.TrimSpace(cursor))
	if err != nil {
		return FavoritesPageDTO{}, err
	}

	query := r.db.WithContext(ctx).
		Table("favorites f").
		Select("f.id AS favorite_id, f.created_at AS favorite_created_at, p.*").
		Joins("JOIN house_plans p ON p.id = f.plan_id").
		Where("f.user_id = ?", userID)

	if decodedCursor != nil {
		query = query.Where("(f.created_at < ?) OR (f.created_at = ? AND f.id < ?)",
			decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID)
	}

	var records []favoritePlanRecord
	if err := query.
		Order("f.created_at DESC").
		Order("f.id DESC").
		Limit(limitWithBuffer).
		Scan(&records).
		Error; err != nil {
		return FavoritesPageDTO{}, err
	}

	nextCursor := ""
	if len(records) > normalizedLimit {
		records = records[:normalizedLimit]
		last := records[len(records)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.FavoriteCreatedAt,
			ID:        last.FavoriteID,
		})
	}

	items := make([]FavoriteDTO, 0, len(records))
	for _, record := range records {
		items = append(items, record.toDTO())
	}

	return FavoritesPageDTO{
		Items:      items,
		NextCursor: nextCursor,
	}, nil
}
