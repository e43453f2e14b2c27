package engine

import (
	"fmt"
	"math"

	"github.com/schoolroute/bustrack/internal/pkg/models"
)

// EvaluateSpeed returns one speed warning intent per vehicle recipient
// when the fix's speed strictly exceeds limitKmh. A speed equal to the
// limit does not trigger.
func EvaluateSpeed(fix *models.LocationFix, recipientIDs []string, limitKmh float64) []models.NotificationIntent {
	if fix == nil || len(recipientIDs) == 0 {
		return nil
	}
	if fix.SpeedKmh <= limitKmh {
		return nil
	}

	message := fmt.Sprintf("Bus %s is going %d km/h, over the %d km/h limit",
		fix.VehicleID, int(math.Round(fix.SpeedKmh)), int(math.Round(limitKmh)))

	intents := make([]models.NotificationIntent, 0, len(recipientIDs))
	for _, recipientID := range recipientIDs {
		intents = append(intents, models.NotificationIntent{
			RecipientID: recipientID,
			VehicleID:   fix.VehicleID,
			Kind:        models.NotificationKindSpeedWarning,
			Message:     message,
		})
	}

	return intents
}
