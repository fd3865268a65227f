package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quotevault/quotevault/internal/adapters/http/handlers"
	"github.com/quotevault/quotevault/internal/adapters/http/middleware"
	"github.com/quotevault/quotevault/internal/platform/telemetry"
	"github.com/quotevault/quotevault/internal/ports"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// ServiceName labels telemetry spans.
	ServiceName string

	// Identity gates the routes that need a signed-in user.
	Identity ports.Identity

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler serves quote and favorite endpoints.
	QuoteHandler *handlers.QuoteHandler

	// CollectionHandler serves collection endpoints.
	CollectionHandler *handlers.CollectionHandler

	// AuthHandler serves account endpoints.
	AuthHandler *handlers.AuthHandler

	// SettingsHandler serves preference endpoints.
	SettingsHandler *handlers.SettingsHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline (applied per-route or globally)
//
// Route groups:
//   - /-/ (internal): Health endpoints, no auth required
//   - /api/v1/ (public API): quotes, search, auth, settings
//   - /api/v1/ signed-in only: favorites, collections, profile
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.ServiceName),
		middleware.Logging(cfg.Logger),
	)

	// Health endpoints skip auth and timeouts so probes stay cheap.
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(apiV1)
	}

	if cfg.AuthHandler != nil {
		cfg.AuthHandler.RegisterAuthRoutes(apiV1)
	}

	if cfg.SettingsHandler != nil {
		cfg.SettingsHandler.RegisterSettingsRoutes(apiV1)
	}

	// Favorites, collections, and the profile need a signed-in user.
	protected := apiV1.Group("")
	if cfg.Identity != nil {
		protected.Use(middleware.RequireUser(cfg.Identity))
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterFavoriteRoutes(protected)
	}

	if cfg.CollectionHandler != nil {
		cfg.CollectionHandler.RegisterCollectionRoutes(protected)
	}

	if cfg.AuthHandler != nil {
		cfg.AuthHandler.RegisterProfileRoutes(protected)
	}
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
// Useful for testing or lightweight deployments.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}
