// Package main is the entry point for the quotevault service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quotevault/quotevault/internal/adapters/clients"
	"github.com/quotevault/quotevault/internal/adapters/demo"
	"github.com/quotevault/quotevault/internal/adapters/http"
	"github.com/quotevault/quotevault/internal/adapters/http/handlers"
	"github.com/quotevault/quotevault/internal/adapters/tables"
	"github.com/quotevault/quotevault/internal/app"
	"github.com/quotevault/quotevault/internal/notify"
	"github.com/quotevault/quotevault/internal/platform/config"
	"github.com/quotevault/quotevault/internal/platform/logging"
	"github.com/quotevault/quotevault/internal/platform/storage"
	"github.com/quotevault/quotevault/internal/platform/telemetry"
	"github.com/quotevault/quotevault/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting quotevault",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("backend_mode", cfg.Backend.Mode),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Select the backend pair for the configured mode
	backend, authBackend, err := buildBackends(cfg, logger, healthRegistry)
	if err != nil {
		return err
	}

	// 7. Local persistence for settings and the signed-in profile
	fileStore, err := storage.NewFileStore(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening state store: %w", err)
	}

	// 8. Application stores
	authStore := app.NewAuthStore(app.AuthStoreConfig{
		Backend: authBackend,
		Store:   fileStore,
		Logger:  logger,
	})
	authStore.Initialize(ctx)

	settingsStore := app.NewSettingsStore(app.SettingsStoreConfig{
		Store:  fileStore,
		Logger: logger,
	})

	quoteStore := app.NewQuoteStore(app.QuoteStoreConfig{
		Backend:  backend,
		Identity: authStore,
		Logger:   logger,
	})
	quoteStore.Warm(ctx)

	// 9. Daily alert scheduling
	scheduler := notify.NewScheduler(notify.SchedulerConfig{
		Sink:   notify.NewLogSink(logger),
		Logger: logger,
	})
	defer scheduler.Cancel()

	scheduleDailyAlert(cfg, settingsStore, quoteStore, scheduler)

	// 10. Handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	quoteHandler := handlers.NewQuoteHandler(quoteStore)
	collectionHandler := handlers.NewCollectionHandler(quoteStore)
	authHandler := handlers.NewAuthHandler(authStore)
	settingsHandler := handlers.NewSettingsHandler(settingsStore, quoteStore, scheduler)

	// 11. HTTP server and routes
	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:            logger,
		ServiceName:       cfg.App.Name,
		Identity:          authStore,
		HealthHandler:     healthHandler,
		QuoteHandler:      quoteHandler,
		CollectionHandler: collectionHandler,
		AuthHandler:       authHandler,
		SettingsHandler:   settingsHandler,
		Timeout:           http.DefaultRequestTimeout,
	})

	// 12. Start server (non-blocking)
	serverErr := server.Start()

	// 13. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// buildBackends wires the quote and auth backends for the configured
// mode. The demo pair needs no network; the remote pair shares one
// instrumented HTTP client against the table API.
func buildBackends(
	cfg *config.Config,
	logger *slog.Logger,
	healthRegistry *ports.HealthRegistry,
) (ports.Backend, ports.AuthBackend, error) {
	if cfg.Backend.Mode == config.BackendModeDemo {
		backend := demo.New(demo.Config{Logger: logger})
		if err := healthRegistry.Register(backend); err != nil {
			return nil, nil, fmt.Errorf("registering demo health check: %w", err)
		}

		return backend, demo.NewAuth(demo.Config{Logger: logger}), nil
	}

	httpClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Backend.BaseURL,
		ServiceName: cfg.Backend.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		AuthFunc: func(req *stdhttp.Request) {
			req.Header.Set("apikey", cfg.Backend.APIKey)
			if req.Header.Get("Authorization") == "" {
				req.Header.Set("Authorization", "Bearer "+cfg.Backend.APIKey)
			}
		},
		Logger: logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating backend client: %w", err)
	}

	backend := tables.New(tables.Config{Client: httpClient, Logger: logger})
	if err := healthRegistry.Register(backend); err != nil {
		return nil, nil, fmt.Errorf("registering backend health check: %w", err)
	}

	return backend, tables.NewAuth(tables.Config{Client: httpClient, Logger: logger}), nil
}

// scheduleDailyAlert arranges the daily quote notification when both
// the service config and the user preference allow it.
func scheduleDailyAlert(
	cfg *config.Config,
	settings *app.SettingsStore,
	quotes *app.QuoteStore,
	scheduler *notify.Scheduler,
) {
	if !cfg.Notifications.Enabled {
		return
	}

	prefs := settings.Settings()
	if !prefs.NotificationsEnabled {
		return
	}

	at := prefs.NotificationTime
	if at == "" {
		at = cfg.Notifications.Time
	}

	quote := quotes.QuoteOfDay()
	if quote == nil {
		return
	}

	hour, minute := notify.ParseTime(at)
	scheduler.Schedule(hour, minute, quote.Text, quote.Author)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
