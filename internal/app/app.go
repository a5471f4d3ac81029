package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/lumenlab/whisperbox/internal/http"
	"github.com/lumenlab/whisperbox/internal/mail"
	"github.com/lumenlab/whisperbox/internal/service"
	"github.com/lumenlab/whisperbox/internal/store"
	"github.com/lumenlab/whisperbox/internal/store/drivers/sqlite"
	"github.com/lumenlab/whisperbox/internal/suggest"
	"github.com/lumenlab/whisperbox/pkg/cryptox"
	"github.com/lumenlab/whisperbox/pkg/jwtx"
	"github.com/lumenlab/whisperbox/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the whisperbox service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         store.Store
	keyManager *jwtx.KeyManager

	// Services
	signupService       *service.SignupService
	verificationService *service.VerificationService
	sessionService      *service.SessionService
	acceptanceService   *service.AcceptanceService
	messageService      *service.MessageService
	suggestService      *service.SuggestService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "whisperbox",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keyManager, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  app.cfg.Issuer,
		NumKeys: app.cfg.NumKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}
	app.keyManager = keyManager

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("whisperbox starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down whisperbox...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("whisperbox stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	mailer := &mail.Mailer{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.SMTPFrom,
	}

	app.signupService = &service.SignupService{
		Store:   app.db,
		Mailer:  mailer,
		CodeTTL: app.cfg.CodeTTL,
	}
	app.verificationService = &service.VerificationService{Store: app.db}
	app.sessionService = &service.SessionService{
		KeyManager: app.keyManager,
		Store:      app.db,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.acceptanceService = &service.AcceptanceService{Store: app.db}
	app.messageService = &service.MessageService{Store: app.db}
	app.suggestService = &service.SuggestService{
		Provider: &suggest.GeminiClient{
			APIKey: app.cfg.GeminiAPIKey,
			Model:  app.cfg.GeminiModel,
		},
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.SignupService = app.signupService
	router.VerificationService = app.verificationService
	router.SessionService = app.sessionService
	router.AcceptanceService = app.acceptanceService
	router.MessageService = app.messageService
	router.SuggestService = app.suggestService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
