package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/koboapp/kobo/internal/adapter/http/handler"
	"github.com/koboapp/kobo/internal/adapter/http/middleware"
	"github.com/koboapp/kobo/internal/infrastructure/auth"
	"github.com/koboapp/kobo/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler         *handler.AuthHandler
	ExpenseHandler      *handler.ExpenseHandler
	IncomeHandler       *handler.IncomeHandler
	SubscriptionHandler *handler.SubscriptionHandler
	SavingsHandler      *handler.SavingsHandler
	AllocationHandler   *handler.AllocationHandler
	DashboardHandler    *handler.DashboardHandler
	CurrencyHandler     *handler.CurrencyHandler
	CalculatorHandler   *handler.CalculatorHandler
	SettingsHandler     *handler.SettingsHandler
	CronHandler         *handler.CronHandler
	HealthHandler       *handler.HealthHandler

	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Operational endpoints
	r.Get("/healthz", cfg.HealthHandler.Liveness)
	r.Get("/readyz", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore).Wrap)
		}

		// Public
		r.Post("/auth/register", cfg.AuthHandler.Register)
		r.Post("/auth/login", cfg.AuthHandler.Login)
		r.Post("/calculator/compound", cfg.CalculatorHandler.Compound)
		r.Get("/currency/rate", cfg.CurrencyHandler.Rate)
		r.Get("/currency/rates", cfg.CurrencyHandler.Rates)

		// Scheduler endpoints use a shared secret, not a user token.
		r.Post("/cron/savings-reminder", cfg.CronHandler.SavingsReminder)

		// Authenticated
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))

			r.Get("/auth/me", cfg.AuthHandler.Me)

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", cfg.ExpenseHandler.Create)
				r.Get("/", cfg.ExpenseHandler.List)
				r.Get("/{id}", cfg.ExpenseHandler.Get)
				r.Put("/{id}", cfg.ExpenseHandler.Update)
				r.Delete("/{id}", cfg.ExpenseHandler.Delete)
			})

			r.Route("/income", func(r chi.Router) {
				r.Post("/", cfg.IncomeHandler.Create)
				r.Get("/", cfg.IncomeHandler.List)
				r.Get("/{id}", cfg.IncomeHandler.Get)
				r.Put("/{id}", cfg.IncomeHandler.Update)
				r.Delete("/{id}", cfg.IncomeHandler.Delete)
			})

			r.Route("/subscriptions", func(r chi.Router) {
				r.Post("/", cfg.SubscriptionHandler.Create)
				r.Get("/", cfg.SubscriptionHandler.List)
				r.Get("/{id}", cfg.SubscriptionHandler.Get)
				r.Put("/{id}", cfg.SubscriptionHandler.Update)
				r.Delete("/{id}", cfg.SubscriptionHandler.Delete)
			})

			r.Route("/savings", func(r chi.Router) {
				r.Post("/", cfg.SavingsHandler.Create)
				r.Get("/", cfg.SavingsHandler.List)
				r.Get("/{id}", cfg.SavingsHandler.Get)
				r.Put("/{id}", cfg.SavingsHandler.Update)
				r.Delete("/{id}", cfg.SavingsHandler.Delete)
				r.Get("/{id}/forecast", cfg.SavingsHandler.Forecast)
			})

			r.Route("/allocations", func(r chi.Router) {
				r.Post("/", cfg.AllocationHandler.Create)
				r.Get("/", cfg.AllocationHandler.List)
				r.Get("/{id}", cfg.AllocationHandler.Get)
				r.Put("/{id}", cfg.AllocationHandler.Update)
				r.Delete("/{id}", cfg.AllocationHandler.Delete)
			})

			r.Get("/dashboard", cfg.DashboardHandler.Overview)

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", cfg.SettingsHandler.Get)
				r.Put("/", cfg.SettingsHandler.Update)
			})
		})
	})

	return r
}
