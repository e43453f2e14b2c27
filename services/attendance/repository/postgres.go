package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/schoolroute/bustrack/internal/pkg/errors"
	"github.com/schoolroute/bustrack/internal/pkg/logger"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/services/attendance"
)

// PostgresAttendanceRepo implements the AttendanceRepo interface
type PostgresAttendanceRepo struct {
	db *sqlx.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *sqlx.DB) attendance.AttendanceRepo {
	return &PostgresAttendanceRepo{
		db: db,
	}
}

// UpsertAttendance inserts or updates the record for its (student,
// vehicle, date, leg) key. The existing row is locked while read so two
// concurrent marks for the same key serialize and the second one sees
// the first one's status as prevStatus.
func (r *PostgresAttendanceRepo) UpsertAttendance(ctx context.Context, record *models.AttendanceRecord) (string, string, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to begin transaction: %w", pkgerrors.ErrStorageUnavailable)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			logger.Error("Failed to rollback attendance transaction", logger.Err(err))
		}
	}()

	var existing struct {
		ID     uuid.UUID `db:"id"`
		Status string    `db:"status"`
	}
	err = tx.GetContext(ctx, &existing, `
		SELECT id, status
		FROM attendance_records
		WHERE student_id = $1 AND vehicle_id = $2 AND date = $3 AND leg = $4
		FOR UPDATE
	`, record.StudentID, record.VehicleID, record.Date, record.Leg)

	action := models.AttendanceActionUpdated
	prevStatus := ""

	switch {
	case err == sql.ErrNoRows:
		action = models.AttendanceActionCreated
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO attendance_records (
				id, student_id, vehicle_id, route_id, date, leg, status,
				check_in_at, latitude, longitude, recorded_by
			) VALUES (
				:id, :student_id, :vehicle_id, :route_id, :date, :leg, :status,
				:check_in_at, :latitude, :longitude, :recorded_by
			)
		`, record)
		if err != nil {
			return "", "", fmt.Errorf("failed to insert attendance record: %w", pkgerrors.ErrStorageUnavailable)
		}

	case err != nil:
		return "", "", fmt.Errorf("failed to look up attendance record: %w", pkgerrors.ErrStorageUnavailable)

	default:
		prevStatus = existing.Status
		record.ID = existing.ID
		_, err = tx.ExecContext(ctx, `
			UPDATE attendance_records
			SET status = $1, check_in_at = $2, latitude = $3, longitude = $4, recorded_by = $5
			WHERE id = $6
		`, record.Status, record.CheckInAt, record.Latitude, record.Longitude, record.RecordedBy, existing.ID)
		if err != nil {
			return "", "", fmt.Errorf("failed to update attendance record: %w", pkgerrors.ErrStorageUnavailable)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", "", fmt.Errorf("failed to commit attendance transaction: %w", pkgerrors.ErrStorageUnavailable)
	}

	return action, prevStatus, nil
}

// ListByVehicleDate returns the records for a vehicle on a date
func (r *PostgresAttendanceRepo) ListByVehicleDate(ctx context.Context, vehicleID string, date time.Time) ([]models.AttendanceRecord, error) {
	records := []models.AttendanceRecord{}
	err := r.db.SelectContext(ctx, &records, `
		SELECT id, student_id, vehicle_id, route_id, date, leg, status,
			check_in_at, latitude, longitude, recorded_by
		FROM attendance_records
		WHERE vehicle_id = $1 AND date = $2
		ORDER BY check_in_at ASC
	`, vehicleID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return records, nil
}
