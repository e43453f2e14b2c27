package notification

import (
	"context"
	"time"

	"github.com/schoolroute/bustrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/schoolroute/bustrack/services/notification NotificationRepo,DedupStore

// NotificationRepo persists notification records
type NotificationRepo interface {
	// CreateNotification inserts a new record
	CreateNotification(ctx context.Context, record *models.NotificationRecord) error

	// ListRecent returns records for a recipient, newest first
	ListRecent(ctx context.Context, recipientID string, limit int) ([]*models.NotificationRecord, error)
}

// DedupStore is the cooldown state behind notification dedup. Acquire is
// an atomic check-then-set on the (recipient, vehicle, kind) key: it
// returns true exactly once per cooldown window, so two concurrent
// evaluations for the same key can never both pass.
type DedupStore interface {
	Acquire(ctx context.Context, recipientID, vehicleID, kind string, cooldown time.Duration, now time.Time) (bool, error)

	// Release drops the cooldown hold so a later intent may fire again.
	// Used to undo an Acquire when record creation fails.
	Release(ctx context.Context, recipientID, vehicleID, kind string) error
}
