package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/schoolroute/bustrack/internal/pkg/middleware"
	"github.com/schoolroute/bustrack/internal/utils"
	"github.com/schoolroute/bustrack/services/notification"
)

// NotificationHandler handles HTTP requests for the notification feed
type NotificationHandler struct {
	repo notification.NotificationRepo
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(repo notification.NotificationRepo) *NotificationHandler {
	return &NotificationHandler{
		repo: repo,
	}
}

// RegisterRoutes registers the notification routes on the given group
func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/notifications", h.ListRecent)
}

// ListRecent handles GET /notifications. The feed is always scoped to
// the caller; there is no cross-recipient view.
func (h *NotificationHandler) ListRecent(c echo.Context) error {
	callerID := middleware.CallerID(c)
	if callerID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return utils.BadRequestResponse(c, "limit must be a non-negative integer")
		}
		limit = parsed
	}

	records, err := h.repo.ListRecent(c.Request().Context(), callerID, limit)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notifications", records)
}
