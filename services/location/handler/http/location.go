package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/schoolroute/bustrack/internal/pkg/logger"
	"github.com/schoolroute/bustrack/internal/pkg/middleware"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/internal/utils"
	"github.com/schoolroute/bustrack/services/location"
)

// RoleDriver is the only role whose fix submissions are pinned to the
// vehicle claim in its token
const RoleDriver = "driver"

// LocationHandler handles HTTP requests for the location service
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// RegisterRoutes registers the location routes on the given group
func (h *LocationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/vehicles/:id/fixes", h.IngestFix)
	g.GET("/vehicles/:id/location", h.CurrentLocation)
	g.GET("/vehicles/:id/history", h.History)
	g.GET("/locations/live", h.LiveLocations)
	g.GET("/locations/nearby", h.NearbyVehicles)
}

// IngestFix handles POST /vehicles/:id/fixes
func (h *LocationHandler) IngestFix(c echo.Context) error {
	vehicleID := c.Param("id")

	// Drivers may only report for the vehicle in their token.
	if middleware.CallerRole(c) == RoleDriver && middleware.CallerVehicleID(c) != vehicleID {
		return utils.ForbiddenResponse(c, "token is not valid for this vehicle")
	}

	var req models.FixRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}
	req.VehicleID = vehicleID

	fix, err := h.locationUC.IngestFix(c.Request().Context(), &req)
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to ingest fix",
			logger.String("vehicle_id", vehicleID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Fix recorded", fix)
}

// CurrentLocation handles GET /vehicles/:id/location
func (h *LocationHandler) CurrentLocation(c echo.Context) error {
	loc, err := h.locationUC.CurrentLocation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Current location", loc)
}

// History handles GET /vehicles/:id/history
func (h *LocationHandler) History(c echo.Context) error {
	var from, to time.Time
	if v := c.QueryParam("from"); v != "" {
		parsed, err := models.ParseTime(v)
		if err != nil {
			return utils.BadRequestResponse(c, "from must be RFC3339")
		}
		from = parsed
	}
	if v := c.QueryParam("to"); v != "" {
		parsed, err := models.ParseTime(v)
		if err != nil {
			return utils.BadRequestResponse(c, "to must be RFC3339")
		}
		to = parsed
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return utils.BadRequestResponse(c, "limit must be a non-negative integer")
		}
		limit = parsed
	}

	fixes, err := h.locationUC.History(c.Request().Context(), c.Param("id"), from, to, limit)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location history", fixes)
}

// LiveLocations handles GET /locations/live
func (h *LocationHandler) LiveLocations(c echo.Context) error {
	callerID := middleware.CallerID(c)
	if callerID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	locations, err := h.locationUC.LiveLocations(c.Request().Context(), callerID, middleware.CallerRole(c))
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to list live locations",
			logger.String("caller_id", callerID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Live locations", locations)
}

// NearbyVehicles handles GET /locations/nearby
func (h *LocationHandler) NearbyVehicles(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat is required")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng is required")
	}

	radiusKm := 0.0
	if v := c.QueryParam("radius_km"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 {
			return utils.BadRequestResponse(c, "radius_km must be a non-negative number")
		}
		radiusKm = parsed
	}

	locations, err := h.locationUC.NearbyVehicles(c.Request().Context(), lat, lon, radiusKm)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby vehicles", locations)
}
