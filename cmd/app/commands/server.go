package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/drinks/internal/app"
	"github.com/allisson/drinks/internal/config"
)

// shutdownTimeout bounds how long in-flight drink requests get to finish after a signal.
const shutdownTimeout = 15 * time.Second

// namedServer is a server RunServer starts and later drains.
type namedServer struct {
	name  string
	start func(ctx context.Context) error
	stop  func(ctx context.Context) error
}

// RunServer starts the drinks API and, when enabled, the metrics server, then blocks until
// SIGINT/SIGTERM or until either server fails. Both servers are drained before returning.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()
	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	server, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}
	servers := []namedServer{{name: "api server", start: server.Start, stop: server.Shutdown}}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}
	if metricsServer != nil {
		servers = append(servers, namedServer{
			name:  "metrics server",
			start: metricsServer.Start,
			stop:  metricsServer.Shutdown,
		})
	}

	logger.Info("starting server",
		slog.String("version", version),
		slog.String("db_driver", cfg.DBDriver),
		slog.String("auth_domain", cfg.AuthDomain),
		slog.String("auth_audience", cfg.AuthAudience),
		slog.Bool("jwks_cache_enabled", cfg.AuthJWKSCacheEnabled),
		slog.Bool("metrics_enabled", metricsServer != nil),
	)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return serveUntilDone(ctx, logger, servers)
}

// serveUntilDone runs every server and drains all of them once ctx ends or one fails.
// A server failure is returned together with any drain errors.
func serveUntilDone(ctx context.Context, logger *slog.Logger, servers []namedServer) error {
	serverErr := make(chan error, len(servers))
	for _, s := range servers {
		go func() {
			if err := s.start(ctx); err != nil {
				serverErr <- fmt.Errorf("%s error: %w", s.name, err)
			}
		}()
	}

	var errs []error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		logger.Error("server error, initiating shutdown", slog.Any("error", err))
		errs = append(errs, err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.stop(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("%s shutdown: %w", s.name, err))
		}
	}

	return errors.Join(errs...)
}
