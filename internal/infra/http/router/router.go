package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/leadcapture/internal/infra/http/handlers"
	"github.com/xavierca1/leadcapture/internal/infra/http/middleware"
	"github.com/xavierca1/leadcapture/internal/infra/http/session"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Settings  *handlers.SettingsHandler
	Webhook   *handlers.WebhookHandler
	Health    *handlers.HealthHandler
}

type Options struct {
	AllowedOrigins    []string
	LoginRateLimit    int
	TrustProxyHeaders bool
}

func New(h Handlers, sessions *session.Manager, opts Options, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if opts.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Logging(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Get("/health", h.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/webhook", h.Webhook.Verify)
	r.Post("/webhook", h.Webhook.Receive)

	r.Get("/", h.Auth.Index)
	r.Get("/signup", h.Auth.SignupPage)
	r.Get("/login", h.Auth.LoginPage)
	r.Get("/logout", h.Auth.Logout)

	limiter := middleware.NewRateLimiter(opts.LoginRateLimit, time.Minute)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter))
		r.Post("/signup", h.Auth.Signup)
		r.Post("/login", h.Auth.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireAuth)
		r.Get("/dashboard", h.Dashboard.Dashboard)
		r.Get("/export", h.Dashboard.Export)
		r.Get("/settings", h.Settings.Page)
		r.Post("/settings", h.Settings.Update)
	})

	return r
}
