package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/schoolroute/bustrack/internal/pkg/logger"
	"github.com/schoolroute/bustrack/internal/pkg/models"
)

const defaultShutdownGrace = 30 * time.Second

// GracefulServer runs the Echo server and drains in-flight requests on
// SIGINT/SIGTERM before returning.
type GracefulServer struct {
	echo   *echo.Echo
	logger *logger.ZapLogger
	port   int
	grace  time.Duration
}

// NewGracefulServer creates a server from the service config. A zero
// shutdown timeout falls back to defaultShutdownGrace.
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, cfg models.ServerConfig) *GracefulServer {
	grace := time.Duration(cfg.ShutdownTimeout) * time.Second
	if grace == 0 {
		grace = defaultShutdownGrace
	}

	return &GracefulServer{
		echo:   e,
		logger: zapLogger,
		port:   cfg.Port,
		grace:  grace,
	}
}

// Start serves until a shutdown signal arrives, then drains the server
// within the configured grace period.
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

// Grace returns the shutdown grace period, shared with component
// cleanup in main.
func (s *GracefulServer) Grace() time.Duration {
	return s.grace
}

// ShutdownManager closes backing components after the server has
// drained. Functions run in registration order; register upstream
// consumers (subscribers) before the connections they use.
type ShutdownManager struct {
	logger    *logger.ZapLogger
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	sm.functions = append(sm.functions, fn)
}

// Shutdown runs every registered cleanup function. A failing component
// does not stop the rest; the first error is returned.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(sm.functions)))

	var firstErr error
	for i, fn := range sm.functions {
		if err := fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.Int("component", i),
				logger.Err(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	sm.logger.Info("Component shutdown completed")
	return firstErr
}
