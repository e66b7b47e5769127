package pricing

import (
	"context"

	"gorm.io/gorm"

	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
)

// Repository reads the add-on service catalog.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a pricing repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListServices returns the full catalog, default services first.
func (r *Repository) ListServices(ctx context.Context) ([]models.AdditionalService, error) {
	var records []models.AdditionalService
	if err := r.db.WithContext(ctx).
		Order("is_default DESC").
		Order("name ASC").
		Find(&records).
		Error; err != nil {
		return nil, err
	}
	return records, nil
}
