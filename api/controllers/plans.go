package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cron6502/plansmaisons-backend/api/responses"
	"github.com/cron6502/plansmaisons-backend/api/validators"
	"github.com/cron6502/plansmaisons-backend/internal/plans"
	"github.com/cron6502/plansmaisons-backend/internal/pricing"
	"github.com/cron6502/plansmaisons-backend/pkg/enums"
	pkgerrors "github.com/cron6502/plansmaisons-backend/pkg/errors"
	"github.com/cron6502/plansmaisons-backend/pkg/logger"
)

// PlanSearch runs the catalog query for the supplied filters. POST carries
// the full filter model as a JSON body; GET reads sparse query parameters.
// Absent fields stay unset so the repository skips those predicates.
func PlanSearch(svc *plans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "plan service unavailable"))
			return
		}

		var filters plans.SearchFilters
		var err error
		if r.Method == http.MethodPost {
			filters = plans.NewSearchFilters()
			err = validators.DecodeJSONBody(r, &filters)
		} else {
			filters, err = searchFiltersFromQuery(r)
		}
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Search(ctx, filters)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// PlanDetail returns a single plan by ID.
func PlanDetail(svc *plans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "plan service unavailable"))
			return
		}

		planID, err := validators.ParsePathUUID(chi.URLParam(r, "planId"), "plan_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Get(ctx, planID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// PlanQuote prices a plan plus the requested add-on services.
func PlanQuote(svc *pricing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pricing service unavailable"))
			return
		}

		planID, err := validators.ParsePathUUID(chi.URLParam(r, "planId"), "plan_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body pricing.QuoteRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Quote(ctx, planID, body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// PlanUpdatePrice mutates a plan's listed price. Role checks happen in
// middleware before this handler runs.
func PlanUpdatePrice(svc *plans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "plan service unavailable"))
			return
		}

		planID, err := validators.ParsePathUUID(chi.URLParam(r, "planId"), "plan_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body plans.UpdatePriceRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.UpdatePrice(ctx, planID, body.Price)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func searchFiltersFromQuery(r *http.Request) (plans.SearchFilters, error) {
	filters := plans.NewSearchFilters()

	if raw := strings.TrimSpace(r.URL.Query().Get("style")); raw != "" {
		style := enums.PlanStyle(strings.ToLower(raw))
		filters.Style = &style
	}

	var err error
	if filters.MinBedrooms, err = validators.ParseQueryIntPtr(r, "min_bedrooms"); err != nil {
		return filters, err
	}
	if filters.MaxBedrooms, err = validators.ParseQueryIntPtr(r, "max_bedrooms"); err != nil {
		return filters, err
	}
	if filters.MinBathrooms, err = validators.ParseQueryIntPtr(r, "min_bathrooms"); err != nil {
		return filters, err
	}
	if filters.MaxBathrooms, err = validators.ParseQueryIntPtr(r, "max_bathrooms"); err != nil {
		return filters, err
	}
	if filters.MinFloorArea, err = validators.ParseQueryFloatPtr(r, "min_floor_area"); err != nil {
		return filters, err
	}
	if filters.MaxFloorArea, err = validators.ParseQueryFloatPtr(r, "max_floor_area"); err != nil {
		return filters, err
	}
	if filters.Floors, err = validators.ParseQueryIntPtr(r, "floors"); err != nil {
		return filters, err
	}
	if filters.Garages, err = validators.ParseQueryIntPtr(r, "garages"); err != nil {
		return filters, err
	}
	if filters.HasPool, err = validators.ParseQueryBoolPtr(r, "has_pool"); err != nil {
		return filters, err
	}
	if filters.MinBudget, err = validators.ParseQueryDecimalPtr(r, "min_budget"); err != nil {
		return filters, err
	}
	if filters.MaxBudget, err = validators.ParseQueryDecimalPtr(r, "max_budget"); err != nil {
		return filters, err
	}
	if filters.MinPrice, err = validators.ParseQueryDecimalPtr(r, "min_price"); err != nil {
		return filters, err
	}
	if filters.MaxPrice, err = validators.ParseQueryDecimalPtr(r, "max_price"); err != nil {
		return filters, err
	}

	return filters, nil
}
