package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/schoolroute/bustrack/internal/pkg/errors"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLocationRepo(t *testing.T) (*PostgresLocationRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &PostgresLocationRepo{db: sqlx.NewDb(db, "sqlmock")}, mock
}

func sampleFix(recordedAt time.Time) *models.LocationFix {
	return &models.LocationFix{
		ID:         uuid.New(),
		VehicleID:  "bus-1",
		Latitude:   33.8886,
		Longitude:  35.4955,
		SpeedKmh:   42,
		Geohash:    "sv8wrp",
		RecordedAt: recordedAt,
	}
}

func TestRecordFix_AppliesNewerFix(t *testing.T) {
	repo, mock := setupLocationRepo(t)

	now := time.Now().UTC()
	fix := sampleFix(now)
	older := now.Add(-30 * time.Second)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT last_fix_at FROM vehicles").
		WithArgs("bus-1").
		WillReturnRows(sqlmock.NewRows([]string{"last_fix_at"}).AddRow(older))
	mock.ExpectExec("INSERT INTO location_fixes").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE vehicles").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := repo.RecordFix(context.Background(), fix)

	assert.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFix_FirstFixForVehicle(t *testing.T) {
	repo, mock := setupLocationRepo(t)

	fix := sampleFix(time.Now().UTC())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT last_fix_at FROM vehicles").
		WithArgs("bus-1").
		WillReturnRows(sqlmock.NewRows([]string{"last_fix_at"}).AddRow(nil))
	mock.ExpectExec("INSERT INTO location_fixes").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE vehicles").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := repo.RecordFix(context.Background(), fix)

	assert.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFix_StaleFixKeptInHistoryOnly(t *testing.T) {
	repo, mock := setupLocationRepo(t)

	now := time.Now().UTC()
	fix := sampleFix(now)
	newer := now.Add(30 * time.Second)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT last_fix_at FROM vehicles").
		WithArgs("bus-1").
		WillReturnRows(sqlmock.NewRows([]string{"last_fix_at"}).AddRow(newer))
	mock.ExpectExec("INSERT INTO location_fixes").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// No snapshot update for a stale fix
	mock.ExpectCommit()

	applied, err := repo.RecordFix(context.Background(), fix)

	assert.NoError(t, err)
	assert.False(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFix_UnknownVehicle(t *testing.T) {
	repo, mock := setupLocationRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT last_fix_at FROM vehicles").
		WithArgs("bus-404").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	fix := sampleFix(time.Now().UTC())
	fix.VehicleID = "bus-404"

	_, err := repo.RecordFix(context.Background(), fix)

	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVehicle_NotFound(t *testing.T) {
	repo, mock := setupLocationRepo(t)

	mock.ExpectQuery("SELECT id, status, latitude").
		WithArgs("bus-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetVehicle(context.Background(), "bus-404")

	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestGetLocationHistory(t *testing.T) {
	repo, mock := setupLocationRepo(t)

	now := time.Now().UTC()
	from := now.Add(-1 * time.Hour)

	rows := sqlmock.NewRows([]string{"id", "vehicle_id", "latitude", "longitude", "speed_kmh", "heading", "geohash", "recorded_at"}).
		AddRow(uuid.New(), "bus-1", 33.8886, 35.4955, 42.0, nil, "sv8wrp", now).
		AddRow(uuid.New(), "bus-1", 33.8880, 35.4950, 38.0, nil, "sv8wrp", now.Add(-time.Minute))

	mock.ExpectQuery("SELECT id, vehicle_id, latitude").
		WithArgs("bus-1", from, now, 100).
		WillReturnRows(rows)

	fixes, err := repo.GetLocationHistory(context.Background(), "bus-1", from, now, 100)

	assert.NoError(t, err)
	assert.Len(t, fixes, 2)
	assert.Equal(t, "bus-1", fixes[0].VehicleID)
}
