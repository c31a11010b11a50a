// Package http provides the drinks API server, its router and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/drinks/internal/auth/http"
	"github.com/allisson/drinks/internal/auth/policy"
	authService "github.com/allisson/drinks/internal/auth/service"
	"github.com/allisson/drinks/internal/config"
	drinksHTTP "github.com/allisson/drinks/internal/drinks/http"
	"github.com/allisson/drinks/internal/httputil"
	"github.com/allisson/drinks/internal/metrics"
)

// Server represents the HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new HTTP server. SetupRouter must be called before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine with the middleware stack and the drinks routes.
// Each drinks route is gated by the permission the route policy assigns to it; routes
// without a permission are public. metricsProvider may be nil when metrics are disabled.
//
// ctx bounds background work started by the middleware (rate limiter cleanup).
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	drinkHandler *drinksHTTP.DrinkHandler,
	verifier authService.TokenVerifier,
	routePolicy *policy.Policy,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	api := router.Group("")
	if cfg.RateLimitEnabled {
		api.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	api.Use(httputil.LegacyErrorStatusMiddleware(cfg.HTTPLegacyErrorStatus))

	gate := func(method, path string) []gin.HandlerFunc {
		permission, ok := routePolicy.Permission(method, path)
		if !ok || permission == "" {
			return nil
		}
		return []gin.HandlerFunc{authHTTP.RequirePermission(permission, verifier, s.logger)}
	}
	route := func(method, path string, handler gin.HandlerFunc) {
		api.Handle(method, path, append(gate(method, path), handler)...)
	}

	route(http.MethodGet, policy.PathDrinks, drinkHandler.ListHandler)
	route(http.MethodGet, policy.PathDrinksDetail, drinkHandler.ListDetailHandler)
	route(http.MethodPost, policy.PathDrinks, drinkHandler.CreateHandler)
	route(http.MethodPatch, policy.PathDrink, drinkHandler.UpdateHandler)
	route(http.MethodDelete, policy.PathDrink, drinkHandler.DeleteHandler)

	router.NoRoute(notFoundHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router is not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports that the process is up.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the database is reachable.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.db == nil || s.db.PingContext(ctx) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}

func notFoundHandler(c *gin.Context) {
	httputil.WriteError(c, http.StatusNotFound, "not_found", "resource not found")
}
