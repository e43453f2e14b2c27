package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/schoolroute/bustrack/internal/pkg/errors"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotificationRepo(t *testing.T) (*PostgresNotificationRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &PostgresNotificationRepo{db: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestCreateNotification(t *testing.T) {
	repo, mock := setupNotificationRepo(t)

	vehicleID := "bus-1"
	record := &models.NotificationRecord{
		ID:          uuid.New(),
		RecipientID: "guardian-1",
		VehicleID:   &vehicleID,
		Kind:        models.NotificationKindNearby,
		Message:     "Bus bus-1 is 0.06 km from Main Gate, arriving in about 4 min",
		CreatedAt:   models.Now(),
	}

	mock.ExpectExec("INSERT INTO notifications").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateNotification(context.Background(), record)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNotification_StorageFailure(t *testing.T) {
	repo, mock := setupNotificationRepo(t)

	record := &models.NotificationRecord{
		ID:          uuid.New(),
		RecipientID: "guardian-1",
		Kind:        models.NotificationKindAbsence,
		Message:     "absent",
		CreatedAt:   models.Now(),
	}

	mock.ExpectExec("INSERT INTO notifications").
		WillReturnError(errors.New("connection refused"))

	err := repo.CreateNotification(context.Background(), record)

	assert.ErrorIs(t, err, pkgerrors.ErrStorageUnavailable)
}

func TestListRecent(t *testing.T) {
	repo, mock := setupNotificationRepo(t)

	rows := sqlmock.NewRows([]string{"id", "recipient_id", "vehicle_id", "kind", "message", "created_at"}).
		AddRow(uuid.New(), "guardian-1", "bus-1", models.NotificationKindNearby, "nearby", models.Now()).
		AddRow(uuid.New(), "guardian-1", nil, models.NotificationKindAbsence, "absent", models.Now())

	mock.ExpectQuery("SELECT id, recipient_id").
		WithArgs("guardian-1", 20).
		WillReturnRows(rows)

	records, err := repo.ListRecent(context.Background(), "guardian-1", 20)

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "guardian-1", records[0].RecipientID)
	assert.Nil(t, records[1].VehicleID)
}
