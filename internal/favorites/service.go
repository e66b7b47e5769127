package favorites

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/cron6502/plansmaisons-backend/pkg/errors"
)

// FavoriteRepository is the persistence surface the service depends on.
type FavoriteRepository interface {
	Toggle(ctx context.Context, userID, planID uuid.UUID) (bool, error)
	IsFavorite(ctx context.Context, userID, planID uuid.UUID) (bool, error)
	ListPage(ctx context.Context, userID uuid.UUID, cursor string, limit int) (FavoritesPageDTO, error)
}

// PlanChecker verifies a plan exists before it can be favorited.
type PlanChecker interface {
	Exists(ctx context.Context, planID uuid.UUID) (bool, error)
}

// ServiceParams groups dependencies for the favorites service.
type ServiceParams struct {
	Repo  FavoriteRepository
	Plans PlanChecker
}

// Service orchestrates favorite toggling and listing.
type Service struct {
	repo  FavoriteRepository
	plans PlanChecker
}

// NewService builds a favorites service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	if params.Plans == nil {
		return nil, errors.New("plans is required")
	}
	return &Service{repo: params.Repo, plans: params.Plans}, nil
}

// Toggle flips favorite membership for the authenticated user.
func (s *Service) Toggle(ctx context.Context, userID, planID uuid.UUID) (ToggleResultDTO, error) {
	exists, err := s.plans.Exists(ctx, planID)
	if err != nil {
		return ToggleResultDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking plan")
	}
	if !exists {
		return ToggleResultDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "plan not found")
	}

	favorited, err := s.repo.Toggle(ctx, userID, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrInvalidValue) {
			return ToggleResultDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "user and plan ids are required")
		}
		return ToggleResultDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "toggling favorite")
	}

	return ToggleResultDTO{PlanID: planID, Favorited: favorited}, nil
}

// List returns a cursor page of the user's favorites.
func (s *Service) List(ctx context.Context, userID uuid.UUID, cursor string, limit int) (FavoritesPageDTO, error) {
	page, err := s.repo.ListPage(ctx, userID, cursor, limit)
	if err != nil {
		return FavoritesPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing favorites")
	}
	return page, nil
}
