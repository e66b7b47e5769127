package pricing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
	pkgerrors "github.com/cron6502/plansmaisons-backend/pkg/errors"
)

// ServiceCatalog is the persistence surface for the add-on catalog.
type ServiceCatalog interface {
	ListServices(ctx context.Context) ([]models.AdditionalService, error)
}

// PlanFetcher resolves the plan whose base price anchors a quote.
type PlanFetcher interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.HousePlan, error)
}

// ServiceParams groups dependencies for the pricing service.
type ServiceParams struct {
	Catalog ServiceCatalog
	Plans   PlanFetcher
}

// Service computes quotes from a base plan price and selected add-ons.
type Service struct {
	catalog ServiceCatalog
	plans   PlanFetcher
}

// NewService builds a pricing service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if params.Plans == nil {
		return nil, errors.New("plans is required")
	}
	return &Service{catalog: params.Catalog, plans: params.Plans}, nil
}

// ListServices returns the add-on catalog, defaults first.
func (s *Service) ListServices(ctx context.Context) ([]ServiceDTO, error) {
	records, err := s.catalog.ListServices(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing services")
	}
	return toServiceDTOs(records), nil
}

// Quote computes the total for a plan with the requested add-on selection.
// Omitting the selection entirely uses the catalog defaults; an explicit
// empty list prices the plan alone.
func (s *Service) Quote(ctx context.Context, planID uuid.UUID, req QuoteRequest) (QuoteDTO, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuoteDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "plan not found")
		}
		return QuoteDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching plan")
	}

	catalog, err := s.catalog.ListServices(ctx)
	if err != nil {
		return QuoteDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing services")
	}

	var selection Selection
	if req.Services == nil {
		selection = DefaultSelection(catalog)
	} else {
		selection = NewSelection(*req.Services...)
	}

	selected := make([]ServiceDTO, 0, len(selection))
	for _, svc := range catalog {
		if selection.Contains(svc.ID) {
			selected = append(selected, toServiceDTO(svc))
		}
	}

	return QuoteDTO{
		PlanID:    plan.ID,
		BasePrice: plan.Price,
		Services:  selected,
		Total:     Total(plan.Price, catalog, selection),
	}, nil
}
