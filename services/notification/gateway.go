package notification

import (
	"context"

	"github.com/schoolroute/bustrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/schoolroute/bustrack/services/notification NotificationGW

// NotificationGW hands created notifications to the external delivery
// sink (email/SMS/in-app workers). Delivery is fire-and-forget: a sink
// failure never rolls back the notification record.
type NotificationGW interface {
	Deliver(ctx context.Context, delivery models.NotificationDelivery) error
}
