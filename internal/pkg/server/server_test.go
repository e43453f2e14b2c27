package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/schoolroute/bustrack/internal/pkg/logger"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"})
	require.NoError(t, err)
	return zapLogger
}

func TestNewGracefulServer_GraceFromConfig(t *testing.T) {
	e := echo.New()

	s := NewGracefulServer(e, testLogger(t), models.ServerConfig{Port: 9990, ShutdownTimeout: 5})
	assert.Equal(t, 5*time.Second, s.Grace())

	// Unset timeout falls back to the default
	s = NewGracefulServer(e, testLogger(t), models.ServerConfig{Port: 9990})
	assert.Equal(t, defaultShutdownGrace, s.Grace())
}

func TestShutdownManager_RunsInRegistrationOrder(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))

	var order []string
	sm.Register(func(context.Context) error {
		order = append(order, "drain")
		return nil
	})
	sm.Register(func(context.Context) error {
		order = append(order, "close")
		return nil
	})

	require.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, []string{"drain", "close"}, order)
}

func TestShutdownManager_FailureDoesNotStopOthers(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))
	closeErr := errors.New("connection already closed")

	var closed bool
	sm.Register(func(context.Context) error { return closeErr })
	sm.Register(func(context.Context) error {
		closed = true
		return nil
	})

	err := sm.Shutdown(context.Background())

	assert.ErrorIs(t, err, closeErr)
	assert.True(t, closed)
}
