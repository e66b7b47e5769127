package plans

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
	pkgerrors "github.com/cron6502/plansmaisons-backend/pkg/errors"
	"github.com/cron6502/plansmaisons-backend/pkg/metrics"
)

// PlanRepository is the persistence surface the service depends on.
type PlanRepository interface {
	Search(ctx context.Context, filters SearchFilters) ([]models.HousePlan, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.HousePlan, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) (*models.HousePlan, error)
}

// ServiceParams groups dependencies for the plan service.
type ServiceParams struct {
	Repo    PlanRepository
	Metrics *metrics.HTTPMetrics
}

// Service orchestrates plan search and retrieval.
type Service struct {
	repo    PlanRepository
	metrics *metrics.HTTPMetrics
	results *ResultSet
}

// NewService builds a plan service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	return &Service{
		repo:    params.Repo,
		metrics: params.Metrics,
		results: NewResultSet(),
	}, nil
}

// Search runs one query for the provided filters. A storage failure leaves
// the previously applied result set in place and surfaces a retryable error.
func (s *Service) Search(ctx context.Context, filters SearchFilters) (SearchResultDTO, error) {
	seq := s.results.Begin(filters)

	records, err := s.repo.Search(ctx, filters)
	if err != nil {
		s.metrics.IncSearch("error")
		return SearchResultDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "searching plans")
	}

	s.results.Apply(seq, records)
	s.metrics.IncSearch("ok")

	return SearchResultDTO{
		Plans: toDTOs(records),
		Total: len(records),
	}, nil
}

// Get fetches one plan by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (PlanDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PlanDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "plan not found")
		}
		return PlanDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching plan")
	}
	return toDTO(*record), nil
}

// UpdatePrice sets a new listed price. Role enforcement happens at the
// middleware layer, the service only validates the value itself.
func (s *Service) UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) (PlanDTO, error) {
	if price.IsNegative() {
		return PlanDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}

	record, err := s.repo.UpdatePrice(ctx, id, price)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PlanDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "plan not found")
		}
		return PlanDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating plan price")
	}
	return toDTO(*record), nil
}
