package attendance

import (
	"context"
	"time"

	"github.com/schoolroute/bustrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/schoolroute/bustrack/services/attendance AttendanceUC

// AttendanceUC defines the attendance service usecase operations
type AttendanceUC interface {
	// Mark upserts the attendance record for (student, vehicle, date,
	// leg) and emits an absence alert when the mark creates the record
	// as absent or transitions it into absent
	Mark(ctx context.Context, req *models.MarkAttendanceRequest, recordedBy string) (*models.MarkAttendanceResult, error)

	// ListForVehicle returns the attendance records of a vehicle for one
	// calendar date
	ListForVehicle(ctx context.Context, vehicleID string, date time.Time) ([]models.AttendanceRecord, error)
}
