/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request, stored on history records
  4. CORS:       Cross-origin requests from the calculator pages

ROUTE GROUPS:
  /api/tax, /api/take-home, /api/estimate, /api/regime   Calculators
  /api/history/*                                         Calculation history
  /api/scenarios/*                                       Preset profiles
  /healthz                                               Liveness

SECURITY NOTE:
  No authentication middleware. All endpoints are public, including
  DELETE /api/history.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// DefaultAllowedOrigins are the local frontend dev servers.
var DefaultAllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}

// NewRouter creates a new router with all routes configured.
// An empty allowedOrigins falls back to DefaultAllowedOrigins.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	if len(allowedOrigins) == 0 {
		allowedOrigins = DefaultAllowedOrigins
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		// Calculator routes
		r.Post("/tax", h.ComputeTax)
		r.Post("/take-home", h.CalculateTakeHome)
		r.Get("/take-home/pdf", h.TakeHomePDF)
		r.Post("/estimate", h.EstimateGross)
		r.Get("/regime", h.GetRegime)

		// History routes
		r.Route("/history", func(r chi.Router) {
			r.Get("/", h.ListHistory)
			r.Delete("/", h.ResetHistory)
			r.Get("/{id}", h.GetHistory)
		})

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/run", h.RunScenario)
		})
	})

	return r
}
