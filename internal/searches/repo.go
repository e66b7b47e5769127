package searches

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
)

// Repository encapsulates saved search persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a saved search repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a named filter snapshot for a user.
func (r *Repository) Create(ctx context.Context, record *models.SavedSearch) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(record).Error
}

// ListByUser returns every saved search a user owns, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SavedSearch, error) {
	var records []models.SavedSearch
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&records).
		Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes a saved search, scoped to its owner. It returns
// gorm.ErrRecordNotFound when the user owns no such search.
func (r *Repository) Delete(ctx context.Context, userID, searchID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", searchID, userID).
		Delete(&models.SavedSearch{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
