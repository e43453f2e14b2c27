package attendance

import (
	"context"
	"time"

	"github.com/schoolroute/bustrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/schoolroute/bustrack/services/attendance AttendanceRepo

// AttendanceRepo stores attendance records keyed by (student, vehicle,
// date, leg)
type AttendanceRepo interface {
	// UpsertAttendance inserts the record, or updates the existing row
	// for its key in place. Returns whether the mark created or updated,
	// and for updates the status the row held before. Both the lookup
	// and the write happen in one transaction with the row locked.
	UpsertAttendance(ctx context.Context, record *models.AttendanceRecord) (action, prevStatus string, err error)

	// ListByVehicleDate returns the records for a vehicle on a date
	ListByVehicleDate(ctx context.Context, vehicleID string, date time.Time) ([]models.AttendanceRecord, error)
}
