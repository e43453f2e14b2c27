package nats

import (
	"context"
	"fmt"

	"github.com/schoolroute/bustrack/internal/pkg/constants"
	"github.com/schoolroute/bustrack/internal/pkg/logger"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	natspkg "github.com/schoolroute/bustrack/internal/pkg/nats"
	"github.com/schoolroute/bustrack/services/notification"
)

// NotificationGW publishes notifications to the external delivery
// workers over NATS
type NotificationGW struct {
	natsClient *natspkg.Client
}

// NewNotificationGW creates a new notification gateway
func NewNotificationGW(client *natspkg.Client) notification.NotificationGW {
	return &NotificationGW{
		natsClient: client,
	}
}

// Deliver publishes a notification to the delivery subject
func (g *NotificationGW) Deliver(ctx context.Context, delivery models.NotificationDelivery) error {
	if err := g.natsClient.PublishJSON(constants.SubjectNotifyDeliver, delivery); err != nil {
		return fmt.Errorf("failed to publish notification delivery: %w", err)
	}

	logger.DebugCtx(ctx, "Published notification delivery",
		logger.String("record_id", delivery.RecordID.String()),
		logger.String("kind", delivery.Kind))
	return nil
}
