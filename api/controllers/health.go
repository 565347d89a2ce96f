package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/menucart/api/responses"
	"github.com/angelmondragon/menucart/pkg/config"
	pkgerrors "github.com/angelmondragon/menucart/pkg/errors"
	"github.com/angelmondragon/menucart/pkg/logger"
)

const envHeader = "X-Menucart-Env"

// Pinger is any dependency that can report its reachability.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the optional Redis store. A nil pinger means the store is
// not configured and is reported as skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisPinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		checks := map[string]string{"redis": "skipped"}
		if redisPinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := redisPinger.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis not ready").
						WithDetails(map[string]string{"redis": "unreachable"}))
				return
			}
			checks["redis"] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
