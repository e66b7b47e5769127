package searches

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
	pkgerrors "github.com/cron6502/plansmaisons-backend/pkg/errors"
)

// SavedSearchRepository is the persistence surface the service depends on.
type SavedSearchRepository interface {
	Create(ctx context.Context, record *models.SavedSearch) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SavedSearch, error)
	Delete(ctx context.Context, userID, searchID uuid.UUID) error
}

// ServiceParams groups dependencies for the saved search service.
type ServiceParams struct {
	Repo SavedSearchRepository
}

// Service manages named filter snapshots.
type Service struct {
	repo SavedSearchRepository
}

// NewService builds a saved search service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

// Create persists a named snapshot of the provided filters.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateSavedSearchRequest) (SavedSearchDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return SavedSearchDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "search name is required")
	}

	raw, err := json.Marshal(req.Filters)
	if err != nil {
		return SavedSearchDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding filters")
	}

	record := models.SavedSearch{
		UserID:  userID,
		Name:    name,
		Filters: raw,
	}
	if err := s.repo.Create(ctx, &record); err != nil {
		return SavedSearchDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving search")
	}

	dto, err := toDTO(record)
	if err != nil {
		return SavedSearchDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding saved search")
	}
	return dto, nil
}

// List returns every saved search the user owns.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]SavedSearchDTO, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing searches")
	}

	dtos := make([]SavedSearchDTO, 0, len(records))
	for _, record := range records {
		dto, err := toDTO(record)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding saved search")
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

// Delete removes one saved search owned by the user.
func (s *Service) Delete(ctx context.Context, userID, searchID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, searchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "saved search not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting search")
	}
	return nil
}
