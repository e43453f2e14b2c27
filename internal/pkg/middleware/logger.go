package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/schoolroute/bustrack/internal/pkg/logger"
)

// RequestIDHeader carries the request ID across services
const RequestIDHeader = "X-Request-ID"

// RequestLogger logs every HTTP request with latency and caller context
func RequestLogger(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Response().Header().Set(RequestIDHeader, requestID)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			zapLogger.LogHTTPRequest(
				c.Request().Method,
				c.Request().URL.Path,
				c.RealIP(),
				CallerID(c),
				requestID,
				c.Response().Status,
				time.Since(start),
				err,
			)

			return err
		}
	}
}
