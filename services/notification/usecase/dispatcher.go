package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/schoolroute/bustrack/internal/pkg/logger"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/services/notification"
)

// DispatcherUC implements the notification.Dispatcher interface
type DispatcherUC struct {
	repo  notification.NotificationRepo
	dedup notification.DedupStore
	gw    notification.NotificationGW
	cfg   *models.AlertsConfig
}

// NewDispatcherUC creates a new notification dispatcher
func NewDispatcherUC(
	repo notification.NotificationRepo,
	dedup notification.DedupStore,
	gw notification.NotificationGW,
	cfg *models.AlertsConfig,
) notification.Dispatcher {
	return &DispatcherUC{
		repo:  repo,
		dedup: dedup,
		gw:    gw,
		cfg:   cfg,
	}
}

// CooldownFor returns the cooldown window for a notification kind. The
// windows are policy constants carried in config, not baked into the
// dedup store.
func (d *DispatcherUC) CooldownFor(kind string) time.Duration {
	switch kind {
	case models.NotificationKindNearby:
		return time.Duration(d.cfg.NearbyCooldownMinutes) * time.Minute
	case models.NotificationKindSpeedWarning:
		return time.Duration(d.cfg.SpeedCooldownMinutes) * time.Minute
	case models.NotificationKindAbsence:
		return time.Duration(d.cfg.AbsenceCooldownMinutes) * time.Minute
	default:
		return 5 * time.Minute
	}
}

// Dispatch runs every intent through dedup, persists the survivors and
// forwards them to the delivery sink. Intents are independent: one
// failing intent does not block the rest.
func (d *DispatcherUC) Dispatch(ctx context.Context, intents []models.NotificationIntent) error {
	var firstErr error
	for _, intent := range intents {
		if err := d.dispatchOne(ctx, intent); err != nil {
			logger.ErrorCtx(ctx, "Failed to dispatch notification",
				logger.String("recipient_id", intent.RecipientID),
				logger.String("vehicle_id", intent.VehicleID),
				logger.String("kind", intent.Kind),
				logger.Err(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (d *DispatcherUC) dispatchOne(ctx context.Context, intent models.NotificationIntent) error {
	now := models.Now()
	cooldown := d.CooldownFor(intent.Kind)

	ok, err := d.dedup.Acquire(ctx, intent.RecipientID, intent.VehicleID, intent.Kind, cooldown, now)
	if err != nil {
		return fmt.Errorf("dedup check failed: %w", err)
	}
	if !ok {
		// Same (recipient, vehicle, kind) alerted within the window
		logger.DebugCtx(ctx, "Notification suppressed by cooldown",
			logger.String("recipient_id", intent.RecipientID),
			logger.String("kind", intent.Kind),
			logger.Duration("cooldown", cooldown))
		return nil
	}

	record := &models.NotificationRecord{
		ID:          uuid.New(),
		RecipientID: intent.RecipientID,
		Kind:        intent.Kind,
		Message:     intent.Message,
		CreatedAt:   now,
	}
	if intent.VehicleID != "" {
		vehicleID := intent.VehicleID
		record.VehicleID = &vehicleID
	}

	if err := d.repo.CreateNotification(ctx, record); err != nil {
		// Give the cooldown hold back so a later fix can retry
		if relErr := d.dedup.Release(ctx, intent.RecipientID, intent.VehicleID, intent.Kind); relErr != nil {
			logger.WarnCtx(ctx, "Failed to release cooldown after create failure",
				logger.String("recipient_id", intent.RecipientID),
				logger.Err(relErr))
		}
		return fmt.Errorf("failed to create notification record: %w", err)
	}

	// Fire-and-forget: sink failures are logged, never surfaced to the
	// caller and never roll back the record.
	delivery := models.NotificationDelivery{
		RecordID:    record.ID,
		RecipientID: record.RecipientID,
		VehicleID:   intent.VehicleID,
		Kind:        record.Kind,
		Message:     record.Message,
		CreatedAt:   record.CreatedAt,
	}
	if err := d.gw.Deliver(ctx, delivery); err != nil {
		logger.WarnCtx(ctx, "Notification sink delivery failed",
			logger.String("record_id", record.ID.String()),
			logger.String("kind", record.Kind),
			logger.Err(err))
	}

	return nil
}
