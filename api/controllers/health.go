package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/cron6502/plansmaisons-backend/api/responses"
	"github.com/cron6502/plansmaisons-backend/pkg/config"
	"github.com/cron6502/plansmaisons-backend/pkg/db"
	pkgerrors "github.com/cron6502/plansmaisons-backend/pkg/errors"
	"github.com/cron6502/plansmaisons-backend/pkg/logger"
)

const envHeader = "X-PlansMaisons-Env"

const readinessTimeout = 3 * time.Second

type redisPinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady probes every backing dependency before reporting ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redisPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				respondNotReady(ctx, logg, w, "database", err)
				return
			}
			checks["database"] = "ok"
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				respondNotReady(ctx, logg, w, "redis", err)
				return
			}
			checks["redis"] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}

func respondNotReady(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, dependency string, err error) {
	wrapped := pkgerrors.Wrap(pkgerrors.CodeDependency, err, dependency+" unavailable")
	responses.WriteError(ctx, logg, w, wrapped)
}
