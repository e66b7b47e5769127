package searches

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cron6502/plansmaisons-backend/internal/plans"
	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
	pkgerrors "github.com/cron6502/plansmaisons-backend/pkg/errors"
)

type stubSearchRepo struct {
	created []models.SavedSearch
	listErr error
}

func (s *stubSearchRepo) Create(ctx context.Context, record *models.SavedSearch) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	s.created = append(s.created, *record)
	return nil
}

func (s *stubSearchRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SavedSearch, error) {
	return s.created, s.listErr
}

func (s *stubSearchRepo) Delete(ctx context.Context, userID, searchID uuid.UUID) error {
	return nil
}

func intPtr(v int) *int { return &v }

func TestCreateRoundTripsFilters(t *testing.T) {
	repo := &stubSearchRepo{}
	svc, err := NewService(ServiceParams{Repo: repo})
	require.NoError(t, err)

	userID := uuid.New()
	created, err := svc.Create(context.Background(), userID, CreateSavedSearchRequest{
		Name:    "  Familiale  ",
		Filters: plans.SearchFilters{MinBedrooms: intPtr(4)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Familiale", created.Name)
	require.NotNil(t, created.Filters.MinBedrooms)
	assert.Equal(t, 4, *created.Filters.MinBedrooms)

	listed, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Filters.MinBedrooms)
	assert.Equal(t, 4, *listed[0].Filters.MinBedrooms)
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc, err := NewService(ServiceParams{Repo: &stubSearchRepo{}})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), uuid.New(), CreateSavedSearchRequest{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
}
