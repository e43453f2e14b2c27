package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification kinds. Each kind has its own dedup cooldown bucket, so an
// absence alert never suppresses a nearby alert for the same
// (recipient, vehicle) pair.
const (
	NotificationKindNearby       = "nearby"
	NotificationKindSpeedWarning = "speed_warning"
	NotificationKindAbsence      = "absence"
)

// NotificationIntent is a fully-formed alert that has not yet passed
// dedup. Components return intents instead of side-effecting so the
// alerting logic is testable without a delivery provider.
type NotificationIntent struct {
	RecipientID string `json:"recipient_id"`
	VehicleID   string `json:"vehicle_id,omitempty"`
	Kind        string `json:"kind"`
	Message     string `json:"message"`
}

// NotificationRecord is a persisted notification. Created exactly once
// per dedup window; the delivered/read flags are owned by the consumer UI.
type NotificationRecord struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RecipientID string    `json:"recipient_id" db:"recipient_id"`
	VehicleID   *string   `json:"vehicle_id,omitempty" db:"vehicle_id"`
	Kind        string    `json:"kind" db:"kind"`
	Message     string    `json:"message" db:"message"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// NotificationDelivery is the outbound sink payload published to NATS.
// Delivery is fire-and-forget relative to record creation.
type NotificationDelivery struct {
	RecordID    uuid.UUID `json:"record_id"`
	RecipientID string    `json:"recipient_id"`
	VehicleID   string    `json:"vehicle_id,omitempty"`
	Kind        string    `json:"kind"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
