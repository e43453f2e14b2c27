// Package handler wires the location service into its transports. The
// HTTP routes live in the http subpackage; this package owns the NATS
// telemetry subscription.
package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/schoolroute/bustrack/internal/pkg/constants"
	"github.com/schoolroute/bustrack/internal/pkg/logger"
	"github.com/schoolroute/bustrack/internal/pkg/models"
	natspkg "github.com/schoolroute/bustrack/internal/pkg/nats"
	"github.com/schoolroute/bustrack/services/location"
)

// TelemetryHandler consumes GPS fixes published to NATS. Device
// gateways that batch uplinks publish here instead of calling the HTTP
// endpoint; both paths converge on the same usecase.
type TelemetryHandler struct {
	natsClient *natspkg.Client
	locationUC location.LocationUC
	subs       []*nats.Subscription
}

// NewTelemetryHandler creates a new telemetry NATS handler
func NewTelemetryHandler(client *natspkg.Client, locationUC location.LocationUC) *TelemetryHandler {
	return &TelemetryHandler{
		natsClient: client,
		locationUC: locationUC,
	}
}

// InitSubscribers subscribes to the telemetry subject. The queue group
// spreads fixes across instances so each fix is ingested once.
func (h *TelemetryHandler) InitSubscribers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectTelemetryFix, constants.QueueGroupTelemetry, h.handleFix)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)

	logger.Info("Subscribed to telemetry subject",
		logger.String("subject", constants.SubjectTelemetryFix),
		logger.String("queue", constants.QueueGroupTelemetry))
	return nil
}

// handleFix processes one telemetry message
func (h *TelemetryHandler) handleFix(msg *nats.Msg) {
	var req models.FixRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		logger.Error("Failed to unmarshal telemetry fix", logger.Err(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := h.locationUC.IngestFix(ctx, &req); err != nil {
		logger.ErrorCtx(ctx, "Failed to ingest telemetry fix",
			logger.String("vehicle_id", req.VehicleID),
			logger.Err(err))
	}
}

// Drain unsubscribes from all subjects, letting in-flight messages finish
func (h *TelemetryHandler) Drain() {
	for _, sub := range h.subs {
		if err := sub.Drain(); err != nil {
			logger.Warn("Failed to drain telemetry subscription", logger.Err(err))
		}
	}
}
