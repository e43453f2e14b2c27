package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/schoolroute/bustrack/internal/pkg/errors"
	"github.com/schoolroute/bustrack/internal/pkg/logger"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/services/attendance"
	"github.com/schoolroute/bustrack/services/notification"
)

// AttendanceUC implements the attendance usecase
type AttendanceUC struct {
	repo       attendance.AttendanceRepo
	rosterGW   attendance.RosterGW
	dispatcher notification.Dispatcher
}

// NewAttendanceUC creates a new attendance usecase
func NewAttendanceUC(
	repo attendance.AttendanceRepo,
	rosterGW attendance.RosterGW,
	dispatcher notification.Dispatcher,
) *AttendanceUC {
	return &AttendanceUC{
		repo:       repo,
		rosterGW:   rosterGW,
		dispatcher: dispatcher,
	}
}

// Mark upserts the attendance record for (student, vehicle, date, leg).
// An absence alert fires only when the mark creates the record as
// absent or moves it into absent from another status; repeating the
// same mark is a no-op for alerting.
func (uc *AttendanceUC) Mark(ctx context.Context, req *models.MarkAttendanceRequest, recordedBy string) (*models.MarkAttendanceResult, error) {
	if !models.ValidAttendanceStatus(req.Status) {
		return nil, fmt.Errorf("status %q: %w", req.Status, pkgerrors.ErrInvalidStatus)
	}
	if !models.ValidAttendanceLeg(req.Leg) {
		return nil, fmt.Errorf("leg %q: %w", req.Leg, pkgerrors.ErrInvalidLeg)
	}

	// Resolve the full assignment before writing anything; an unknown
	// student, vehicle or route is a 404, not an orphaned row.
	if err := uc.rosterGW.ResolveAssignment(ctx, req.StudentID, req.VehicleID, req.RouteID); err != nil {
		return nil, err
	}
	guardians, err := uc.rosterGW.StudentGuardians(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	record := &models.AttendanceRecord{
		ID:         uuid.New(),
		StudentID:  req.StudentID,
		VehicleID:  req.VehicleID,
		RouteID:    req.RouteID,
		Date:       models.DateOf(now),
		Leg:        req.Leg,
		Status:     req.Status,
		CheckInAt:  now,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		RecordedBy: recordedBy,
	}

	action, prevStatus, err := uc.repo.UpsertAttendance(ctx, record)
	if err != nil {
		return nil, err
	}

	if becameAbsent(record.Status, action, prevStatus) {
		if err := uc.emitAbsenceAlert(ctx, record, guardians); err != nil {
			// The attendance row is committed, but the caller must not
			// see success while the absence alert was never recorded.
			return nil, fmt.Errorf("absence alert for student %s: %w", record.StudentID, err)
		}
	}

	return &models.MarkAttendanceResult{
		Action: action,
		Record: record,
	}, nil
}

// becameAbsent reports whether this mark is a transition into absent
func becameAbsent(status, action, prevStatus string) bool {
	if status != models.AttendanceStatusAbsent {
		return false
	}
	return action == models.AttendanceActionCreated || prevStatus != models.AttendanceStatusAbsent
}

// emitAbsenceAlert routes absence intents through the shared dedup and
// dispatch path. A dispatch failure surfaces to the caller: the upsert
// already consumed the absent transition, so swallowing it here would
// lose the alert for good.
func (uc *AttendanceUC) emitAbsenceAlert(ctx context.Context, record *models.AttendanceRecord, guardians []string) error {
	if len(guardians) == 0 {
		return nil
	}

	message := fmt.Sprintf("Student %s was marked absent for %s on %s",
		record.StudentID, record.Leg, record.Date.Format("2006-01-02"))

	intents := make([]models.NotificationIntent, 0, len(guardians))
	for _, guardianID := range guardians {
		intents = append(intents, models.NotificationIntent{
			RecipientID: guardianID,
			VehicleID:   record.VehicleID,
			Kind:        models.NotificationKindAbsence,
			Message:     message,
		})
	}

	if err := uc.dispatcher.Dispatch(ctx, intents); err != nil {
		logger.ErrorCtx(ctx, "Failed to dispatch absence alerts",
			logger.String("student_id", record.StudentID),
			logger.String("vehicle_id", record.VehicleID),
			logger.Err(err))
		return err
	}
	return nil
}

// ListForVehicle returns a vehicle's attendance records for one date
func (uc *AttendanceUC) ListForVehicle(ctx context.Context, vehicleID string, date time.Time) ([]models.AttendanceRecord, error) {
	if date.IsZero() {
		date = models.Now()
	}
	return uc.repo.ListByVehicleDate(ctx, vehicleID, models.DateOf(date))
}
