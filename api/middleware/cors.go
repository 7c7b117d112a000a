package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/trendiesmaroc/admin-backend/pkg/config"
)

// CORS returns middleware applying the dashboard origin policy. The demo
// default allows every origin; deployments narrow it via configuration.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}).Handler
}
