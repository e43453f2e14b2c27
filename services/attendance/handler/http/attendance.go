package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/schoolroute/bustrack/internal/pkg/logger"
	"github.com/schoolroute/bustrack/internal/pkg/middleware"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/internal/utils"
	"github.com/schoolroute/bustrack/services/attendance"
)

// AttendanceHandler handles HTTP requests for the attendance service
type AttendanceHandler struct {
	attendanceUC attendance.AttendanceUC
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceUC attendance.AttendanceUC) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceUC: attendanceUC,
	}
}

// RegisterRoutes registers the attendance routes on the given group
func (h *AttendanceHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/attendance", h.Mark)
	g.GET("/vehicles/:id/attendance", h.ListForVehicle)
}

// Mark handles POST /attendance
func (h *AttendanceHandler) Mark(c echo.Context) error {
	callerID := middleware.CallerID(c)
	if callerID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.MarkAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}
	if req.StudentID == "" || req.VehicleID == "" {
		return utils.BadRequestResponse(c, "student_id and vehicle_id are required")
	}

	result, err := h.attendanceUC.Mark(c.Request().Context(), &req, callerID)
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to mark attendance",
			logger.String("student_id", req.StudentID),
			logger.String("vehicle_id", req.VehicleID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	status := http.StatusOK
	if result.Action == models.AttendanceActionCreated {
		status = http.StatusCreated
	}
	return utils.SuccessResponse(c, status, "Attendance marked", result)
}

// ListForVehicle handles GET /vehicles/:id/attendance
func (h *AttendanceHandler) ListForVehicle(c echo.Context) error {
	var date time.Time
	if v := c.QueryParam("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return utils.BadRequestResponse(c, "date must be YYYY-MM-DD")
		}
		date = parsed
	}

	records, err := h.attendanceUC.ListForVehicle(c.Request().Context(), c.Param("id"), date)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Attendance records", records)
}
