package controllers

import (
	"net/http"

	"github.com/Rafhi-Arizkia/kenangan-backend/api/responses"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/config"
	pkgdb "github.com/Rafhi-Arizkia/kenangan-backend/pkg/db"
	pkgerrors "github.com/Rafhi-Arizkia/kenangan-backend/pkg/errors"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/logger"
	pkgredis "github.com/Rafhi-Arizkia/kenangan-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Kenangan-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, db pkgdb.Pinger, cache pkgredis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Kenangan-Env", cfg.App.Env)

		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
				return
			}
		}
		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
