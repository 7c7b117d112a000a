package controllers

import (
	"net/http"

	"github.com/trendiesmaroc/admin-backend/api/responses"
	"github.com/trendiesmaroc/admin-backend/pkg/config"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Trendies-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Trendies-Env", cfg.App.Env)
		emailMode := "simulation"
		if cfg.Brevo.Configured() {
			emailMode = "live"
		}
		responses.WriteSuccess(w, map[string]string{
			"status":    "ready",
			"emailMode": emailMode,
		})
	}
}
