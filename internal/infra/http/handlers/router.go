package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/infra/http/middleware"
	"github.com/xavierca1/admissions-api/internal/infra/ratelimit"
)

type RouterDeps struct {
	Leads     *LeadHandler
	Analytics *AnalyticsHandler
	Auth      *AuthHandler
	News      *NewsHandler
	Results   *ResultHandler
	Health    *HealthHandler

	Gate           *middleware.AdminGate
	IntakeLimiter  ratelimit.Limiter
	TrustProxy     bool
	AllowedOrigins []string
	Logger         *zap.Logger
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if d.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", d.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.RateLimit(d.IntakeLimiter, d.TrustProxy, d.Logger)).Post("/leads", d.Leads.Submit)
		r.Post("/auth/login", d.Auth.Login)

		r.Get("/news", d.News.List)
		r.Get("/news/{slug}", d.News.GetBySlug)
		r.Get("/results", d.Results.List)
		r.Get("/results/{slug}", d.Results.GetBySlug)

		r.Group(func(r chi.Router) {
			r.Use(d.Gate.Handler)

			r.Get("/leads", d.Leads.List)
			r.Get("/leads/export", d.Leads.Export)
			r.Put("/leads/{id}", d.Leads.UpdateStatus)
			r.Get("/analytics", d.Analytics.Get)

			r.Get("/admin/news", d.News.ListAll)
			r.Post("/news", d.News.Create)
			r.Put("/news/{id}", d.News.Update)
			r.Delete("/news/{id}", d.News.Delete)

			r.Post("/results", d.Results.Create)
			r.Put("/results/{id}", d.Results.Update)
			r.Delete("/results/{id}", d.Results.Delete)
		})
	})

	return r
}
