package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/xavierca1/leadcapture/internal/config"
	"github.com/xavierca1/leadcapture/internal/infra/database"
	"github.com/xavierca1/leadcapture/internal/infra/http/handlers"
	"github.com/xavierca1/leadcapture/internal/infra/http/router"
	"github.com/xavierca1/leadcapture/internal/infra/http/session"
	"github.com/xavierca1/leadcapture/internal/infra/http/views"
	"github.com/xavierca1/leadcapture/internal/infra/integration/whatsapp"
	"github.com/xavierca1/leadcapture/internal/infra/mail"
	"github.com/xavierca1/leadcapture/internal/logger"
	"github.com/xavierca1/leadcapture/internal/usecase"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "path to config file (default ./config.json if present)")
	flag.Parse()

	// .env never overrides variables already set in the environment.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.NewDBConnection(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db, cfg.DefaultTenantEmail); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	// 1. Repositories
	userRepo := database.NewUserRepository(db)
	leadRepo := database.NewLeadRepository(db)

	// 2. Integrations
	waClient := whatsapp.NewClient(cfg.WhatsApp.BaseURL, cfg.WhatsApp.Timeout, log.Named("whatsapp"))
	defaultCreds := whatsapp.Credentials{
		AccessToken:   cfg.AccessToken,
		PhoneNumberID: cfg.PhoneNumberID,
	}
	if !defaultCreds.Complete() {
		log.Warn("default WhatsApp credentials missing, replies only go out for tenants with their own credentials")
	}

	var notifier usecase.LeadNotifier
	if cfg.Mail.Enabled() {
		notifier = mail.NewEmailSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From)
	}

	// 3. Use cases
	captureLeadUC := usecase.NewCaptureLeadUseCase(
		leadRepo,
		userRepo,
		waClient,
		notifier,
		usecase.ReplyTextsFromConfig(cfg),
		defaultCreds,
		log.Named("capture"),
	)
	verifier := usecase.NewWebhookVerifier(cfg.VerifyToken, userRepo, log.Named("webhook"))
	authUC := usecase.NewAuthUseCase(userRepo)
	settingsUC := usecase.NewSettingsUseCase(userRepo)

	// 4. Handlers
	renderer, err := views.New()
	if err != nil {
		log.Fatal("failed to parse templates", zap.Error(err))
	}
	sessions := session.NewManager(cfg.SecretKey, cfg.Server.SecureCookies, log.Named("session"))
	pages := handlers.NewPages(sessions, renderer, log.Named("http"))

	h := router.Handlers{
		Auth:      handlers.NewAuthHandler(authUC, pages),
		Dashboard: handlers.NewDashboardHandler(leadRepo, pages),
		Settings:  handlers.NewSettingsHandler(settingsUC, pages),
		Webhook:   handlers.NewWebhookHandler(verifier, captureLeadUC, log.Named("webhook")),
		Health:    handlers.NewHealthHandler(db, defaultCreds.Complete(), cfg.Mail.Enabled(), version),
	}

	// 5. Router
	r := router.New(h, sessions, router.Options{
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		LoginRateLimit:    cfg.Server.LoginRateLimit,
		TrustProxyHeaders: cfg.Server.TrustProxyHeaders,
	}, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		log.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown HTTP server", zap.Error(err))
	}
	log.Info("server stopped")
}
