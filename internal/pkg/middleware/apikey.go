package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ServiceAPIKeys maps service names to their API keys for
// service-to-service communication.
func ServiceAPIKeys(cfg *models.APIKeyConfig) map[string]string {
	return map[string]string{
		"roster-service": cfg.RosterService,
		"ops-service":    cfg.OpsService,
	}
}

// ValidateAPIKey middleware validates the API key for service-to-service communication
func ValidateAPIKey(cfg *models.APIKeyConfig, allowedServices ...string) echo.MiddlewareFunc {
	keys := ServiceAPIKeys(cfg)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			// Check if the API key belongs to any of the allowed services
			validKey := false
			for _, service := range allowedServices {
				if keys[service] != "" && strings.EqualFold(apiKey, keys[service]) {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
