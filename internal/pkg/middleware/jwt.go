package middleware

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/schoolroute/bustrack/internal/pkg/models"
)

// Context keys populated from verified JWT claims. Tokens are issued by
// the external auth service; this middleware only verifies the signature
// and propagates the caller identity, it makes no authorization decision.
const (
	ContextUserID    = "user_id"
	ContextRole      = "role"
	ContextVehicleID = "vehicle_id"
)

// CallerJWT returns the configured JWT middleware for HTTP requests
func CallerJWT(cfg *models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.Secret),
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return
			}
			if userID, exists := claims[ContextUserID]; exists {
				c.Set(ContextUserID, userID)
			}
			if role, exists := claims[ContextRole]; exists {
				c.Set(ContextRole, role)
			}
			if vehicleID, exists := claims[ContextVehicleID]; exists {
				c.Set(ContextVehicleID, vehicleID)
			}
		},
	})
}

// CallerID returns the caller identity previously set by CallerJWT
func CallerID(c echo.Context) string {
	if v, ok := c.Get(ContextUserID).(string); ok {
		return v
	}
	return ""
}

// CallerRole returns the caller role previously set by CallerJWT
func CallerRole(c echo.Context) string {
	if v, ok := c.Get(ContextRole).(string); ok {
		return v
	}
	return ""
}

// CallerVehicleID returns the vehicle claim for driver tokens
func CallerVehicleID(c echo.Context) string {
	if v, ok := c.Get(ContextVehicleID).(string); ok {
		return v
	}
	return ""
}
