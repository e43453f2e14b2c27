package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/schoolroute/bustrack/internal/pkg/errors"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/services/notification"
)

// PostgresNotificationRepo implements the NotificationRepo interface
type PostgresNotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sqlx.DB) notification.NotificationRepo {
	return &PostgresNotificationRepo{
		db: db,
	}
}

// CreateNotification inserts a new notification record
func (r *PostgresNotificationRepo) CreateNotification(ctx context.Context, record *models.NotificationRecord) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO notifications (
			id, recipient_id, vehicle_id, kind, message, created_at
		) VALUES (
			:id, :recipient_id, :vehicle_id, :kind, :message, :created_at
		)
	`, record)

	if err != nil {
		return fmt.Errorf("failed to create notification: %w", pkgerrors.ErrStorageUnavailable)
	}

	return nil
}

// ListRecent returns the newest notifications for a recipient
func (r *PostgresNotificationRepo) ListRecent(ctx context.Context, recipientID string, limit int) ([]*models.NotificationRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	records := []*models.NotificationRecord{}
	err := r.db.SelectContext(ctx, &records, `
		SELECT id, recipient_id, vehicle_id, kind, message, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, recipientID, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return records, nil
}
