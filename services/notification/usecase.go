package notification

import (
	"context"

	"github.com/schoolroute/bustrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/schoolroute/bustrack/services/notification Dispatcher

// Dispatcher applies the cooldown policy to alert intents, persists the
// surviving ones exactly once, and hands them to the delivery sink.
type Dispatcher interface {
	// Dispatch processes intents independently: a failure on one intent
	// does not stop the others. Suppressed intents are not an error.
	Dispatch(ctx context.Context, intents []models.NotificationIntent) error
}
