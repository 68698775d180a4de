package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter assembles the full HTTP surface: the signup API, health and
// metrics endpoints, and the static front end served from staticDir.
func NewRouter(h *ActivityHandler, log *zap.Logger, staticDir string) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(Logger(log))             // structured access log
	r.Use(Metrics)                 // per-route prometheus counters
	r.Use(CORS)                    // permissive CORS for the front end

	r.Get("/", h.Root)
	r.Get("/health", HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Post("/{name}/signup", h.Signup)
		r.Delete("/{name}/unregister", h.Unregister)
	})

	static := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
	r.Handle("/static/*", static)

	return r
}
