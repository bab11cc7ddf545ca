package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/pulse/internal/auth"
	"github.com/mmynk/pulse/internal/middleware"
)

// NewRouter mounts the full API surface.
//
// Public:
//
//	POST /api/register
//	POST /api/login
//	GET  /health
//	GET  /metrics
//
// Everything under /api besides register/login requires a Bearer token.
func NewRouter(
	authHandler *AuthHandler,
	habitHandler *HabitHandler,
	goalHandler *GoalHandler,
	dashboardHandler *DashboardHandler,
	suggestHandler *SuggestHandler,
	jwtManager *auth.JWTManager,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(jwtManager))

			r.Route("/habits", func(r chi.Router) {
				r.Get("/", habitHandler.List)
				r.Post("/", habitHandler.Create)
				r.Put("/{id}", habitHandler.Update)
				r.Delete("/{id}", habitHandler.Delete)
				r.Post("/{id}/toggle", habitHandler.Toggle)
			})

			r.Route("/goals", func(r chi.Router) {
				r.Get("/", goalHandler.List)
				r.Post("/", goalHandler.Create)
				r.Put("/{id}", goalHandler.Update)
				r.Delete("/{id}", goalHandler.Delete)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/calendar", dashboardHandler.Calendar)
				r.Get("/trend", dashboardHandler.Trend)
				r.Get("/stats", dashboardHandler.Stats)
			})

			r.Post("/suggest", suggestHandler.Suggest)
		})
	})

	return r
}
