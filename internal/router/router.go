package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PilYeooong/nuber-eats-backend/internal/domain"
	mw "github.com/PilYeooong/nuber-eats-backend/internal/middleware"
	"github.com/PilYeooong/nuber-eats-backend/internal/middleware/metrics"
	"github.com/PilYeooong/nuber-eats-backend/internal/middleware/ratelimiter"
	"github.com/PilYeooong/nuber-eats-backend/internal/setup"
)

// New creates and configures the chi router with all routes.
func New(deps *setup.Dependencies) *chi.Mux {
	cfg := deps.Cfg.Public
	r := chi.NewRouter()

	r.Use(chi_middleware.Recoverer)
	r.Use(mw.SecurityHeaders(cfg.IsHTTPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", mw.TokenHeader},
	}))
	r.Use(metrics.Middleware)

	// per-IP budget for the unauthenticated account endpoints
	authLimiter := ratelimiter.NewClientRateLimiter(cfg.AuthRatePerSecond, cfg.AuthRateBurst, cfg.AuthRateIdleTTL.Std())

	// Identity resolution is a hint applied to every request; enforcement
	// happens per-route below.
	r.Use(mw.Identify(deps.Jwt, deps.UserService))

	h := deps.Handler

	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(mw.RateLimit(authLimiter, mw.GetIP))
				r.Post("/", h.CreateAccount)
				r.Post("/login", h.Login)
				r.Post("/verify-email", h.VerifyEmail)
			})

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireAuth)
				r.Get("/me", h.Me)
				r.Put("/", h.EditProfile)
			})

			r.Get("/{id}", h.UserProfile)
		})

		r.Route("/restaurants", func(r chi.Router) {
			r.Get("/{id}", h.GetRestaurant)

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(domain.RoleOwner))
				r.Post("/", h.CreateRestaurant)
			})
		})

		r.Route("/payments", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(domain.RoleOwner))
				r.Post("/", h.CreatePayment)
			})

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireAuth)
				r.Get("/", h.GetPayments)
			})
		})
	})

	return r
}
