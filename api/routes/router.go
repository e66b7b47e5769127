package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cron6502/plansmaisons-backend/api/controllers"
	"github.com/cron6502/plansmaisons-backend/api/middleware"
	"github.com/cron6502/plansmaisons-backend/internal/auth"
	"github.com/cron6502/plansmaisons-backend/internal/favorites"
	"github.com/cron6502/plansmaisons-backend/internal/plans"
	"github.com/cron6502/plansmaisons-backend/internal/pricing"
	"github.com/cron6502/plansmaisons-backend/internal/searches"
	"github.com/cron6502/plansmaisons-backend/pkg/auth/session"
	"github.com/cron6502/plansmaisons-backend/pkg/config"
	"github.com/cron6502/plansmaisons-backend/pkg/db"
	"github.com/cron6502/plansmaisons-backend/pkg/logger"
	"github.com/cron6502/plansmaisons-backend/pkg/metrics"
	"github.com/cron6502/plansmaisons-backend/pkg/redis"
)

type redisPinger interface {
	Ping(ctx context.Context) error
}

// Deps groups everything the router wires into handlers.
type Deps struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              db.Pinger
	Redis           *redis.Client
	Sessions        session.AccessSessionChecker
	Registry        *prometheus.Registry
	HTTPMetrics     *metrics.HTTPMetrics
	AuthService     auth.Service
	PlanService     *plans.Service
	PricingService  *pricing.Service
	FavoriteService *favorites.Service
	SearchService   *searches.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, redisPingerOrNil(deps.Redis)))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(signupPolicy, deps.Redis, logg)).Post("/signup", controllers.AuthSignup(deps.AuthService, logg))
		r.Post("/verify", controllers.AuthVerify(deps.AuthService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(deps.AuthService, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Browsing the catalog needs no account.
		r.Get("/plans/search", controllers.PlanSearch(deps.PlanService, logg))
		r.Post("/plans/search", controllers.PlanSearch(deps.PlanService, logg))
		r.Get("/plans/{planId}", controllers.PlanDetail(deps.PlanService, logg))
		r.Post("/plans/{planId}/quote", controllers.PlanQuote(deps.PricingService, logg))
		r.Get("/services", controllers.ServiceList(deps.PricingService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

			r.With(middleware.RequirePriceEditor(logg)).
				Patch("/plans/{planId}/price", controllers.PlanUpdatePrice(deps.PlanService, logg))

			r.Put("/plans/{planId}/favorite", controllers.FavoriteToggle(deps.FavoriteService, logg))
			r.Get("/favorites", controllers.FavoriteList(deps.FavoriteService, logg))

			r.Route("/searches", func(r chi.Router) {
				r.Post("/", controllers.SavedSearchCreate(deps.SearchService, logg))
				r.Get("/", controllers.SavedSearchList(deps.SearchService, logg))
				r.Delete("/{searchId}", controllers.SavedSearchDelete(deps.SearchService, logg))
			})
		})
	})

	return r
}

// redisPingerOrNil avoids a non-nil interface wrapping a nil client.
func redisPingerOrNil(client *redis.Client) redisPinger {
	if client == nil {
		return nil
	}
	return client
}
