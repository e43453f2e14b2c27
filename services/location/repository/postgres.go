package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/schoolroute/bustrack/internal/pkg/errors"
	"github.com/schoolroute/bustrack/internal/pkg/logger"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/services/location"
)

// PostgresLocationRepo implements the LocationRepo interface
type PostgresLocationRepo struct {
	db *sqlx.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sqlx.DB) location.LocationRepo {
	return &PostgresLocationRepo{
		db: db,
	}
}

// GetVehicle returns the vehicle snapshot
func (r *PostgresLocationRepo) GetVehicle(ctx context.Context, vehicleID string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.GetContext(ctx, &vehicle, `
		SELECT id, status, latitude, longitude, speed_kmh, heading, last_fix_at, updated_at
		FROM vehicles
		WHERE id = $1
	`, vehicleID)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vehicle %s: %w", vehicleID, pkgerrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &vehicle, nil
}

// RecordFix appends the fix to history and advances the vehicle snapshot
// when the fix is newer than what is stored. The vehicle row is locked
// for the duration so two fixes for the same vehicle serialize instead
// of interleaving the two writes.
func (r *PostgresLocationRepo) RecordFix(ctx context.Context, fix *models.LocationFix) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", pkgerrors.ErrStorageUnavailable)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			logger.Error("Failed to rollback fix transaction", logger.Err(err))
		}
	}()

	var lastFixAt *time.Time
	err = tx.GetContext(ctx, &lastFixAt, `
		SELECT last_fix_at FROM vehicles WHERE id = $1 FOR UPDATE
	`, fix.VehicleID)
	if err == sql.ErrNoRows {
		return false, fmt.Errorf("vehicle %s: %w", fix.VehicleID, pkgerrors.ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("failed to lock vehicle row: %w", pkgerrors.ErrStorageUnavailable)
	}

	// History is append-only and takes every fix, stale or not.
	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO location_fixes (
			id, vehicle_id, latitude, longitude, speed_kmh, heading, geohash, recorded_at
		) VALUES (
			:id, :vehicle_id, :latitude, :longitude, :speed_kmh, :heading, :geohash, :recorded_at
		)
	`, fix)
	if err != nil {
		return false, fmt.Errorf("failed to append location fix: %w", pkgerrors.ErrStorageUnavailable)
	}

	// The snapshot only moves forward. A fix older than the stored one
	// (late NATS redelivery, client retry) lands in history only.
	applied := lastFixAt == nil || fix.RecordedAt.After(*lastFixAt)
	if applied {
		_, err = tx.ExecContext(ctx, `
			UPDATE vehicles
			SET latitude = $1, longitude = $2, speed_kmh = $3, heading = $4,
				last_fix_at = $5, updated_at = $5
			WHERE id = $6
		`, fix.Latitude, fix.Longitude, fix.SpeedKmh, fix.Heading, fix.RecordedAt, fix.VehicleID)
		if err != nil {
			return false, fmt.Errorf("failed to update vehicle snapshot: %w", pkgerrors.ErrStorageUnavailable)
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit fix transaction: %w", pkgerrors.ErrStorageUnavailable)
	}

	return applied, nil
}

// GetVehicles returns snapshots for the given IDs, skipping unknown ones
func (r *PostgresLocationRepo) GetVehicles(ctx context.Context, vehicleIDs []string) ([]models.Vehicle, error) {
	if len(vehicleIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, status, latitude, longitude, speed_kmh, heading, last_fix_at, updated_at
		FROM vehicles
		WHERE id IN (?)
	`, vehicleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build vehicle query: %w", err)
	}

	vehicles := []models.Vehicle{}
	err = r.db.SelectContext(ctx, &vehicles, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicles: %w", err)
	}

	return vehicles, nil
}

// GetLocationHistory returns fixes within [from, to], newest first
func (r *PostgresLocationRepo) GetLocationHistory(ctx context.Context, vehicleID string, from, to time.Time, limit int) ([]models.LocationFix, error) {
	if limit <= 0 {
		limit = 500
	}

	fixes := []models.LocationFix{}
	err := r.db.SelectContext(ctx, &fixes, `
		SELECT id, vehicle_id, latitude, longitude, speed_kmh, heading, geohash, recorded_at
		FROM location_fixes
		WHERE vehicle_id = $1 AND recorded_at >= $2 AND recorded_at <= $3
		ORDER BY recorded_at DESC
		LIMIT $4
	`, vehicleID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get location history: %w", err)
	}

	return fixes, nil
}
