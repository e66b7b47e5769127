package plans

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
)

// Repository encapsulates house plan persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a plan repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Search returns every plan satisfying all set filter fields, newest first.
func (r *Repository) Search(ctx context.Context, filters SearchFilters) ([]models.HousePlan, error) {
	query := r.db.WithContext(ctx).Model(&models.HousePlan{})

	for _, pred := range filters.Predicates() {
		switch pred.Op {
		case OpEq:
			query = query.Where(pred.Field+" = ?", pred.Value)
		case OpGte:
			query = query.Where(pred.Field+" >= ?", pred.Value)
		case OpLte:
			query = query.Where(pred.Field+" <= ?", pred.Value)
		default:
			return nil, fmt.Errorf("unsupported filter operator %q", pred.Op)
		}
	}

	var records []models.HousePlan
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&records).
		Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByID fetches one plan by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.HousePlan, error) {
	var record models.HousePlan
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).
		Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Exists reports whether a plan with the given id is in the catalog.
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.HousePlan{}).
		Where("id = ?", id).
		Count(&count).
		Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdatePrice sets the listed price on a plan and returns the updated record.
func (r *Repository) UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) (*models.HousePlan, error) {
	result := r.db.WithContext(ctx).
		Model(&models.HousePlan{}).
		Where("id = ?", id).
		Update("price", price)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}
