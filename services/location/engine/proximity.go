// Package engine holds the pure alert evaluations run on every ingested
// fix. The evaluators only build notification intents; dedup and
// persistence happen downstream in the notification dispatcher.
package engine

import (
	"fmt"
	"math"

	"github.com/schoolroute/bustrack/internal/pkg/models"
	"github.com/schoolroute/bustrack/internal/utils"
)

// EvaluateProximity returns one nearby intent per subscribed recipient
// of every stop within radiusKm of the fix. Stops without recipients
// are skipped before any distance math. Multiple qualifying stops each
// produce their own intents.
func EvaluateProximity(fix *models.LocationFix, stops []models.Stop, radiusKm float64) []models.NotificationIntent {
	if fix == nil || len(stops) == 0 {
		return nil
	}

	fixPoint := utils.GeoPoint{Latitude: fix.Latitude, Longitude: fix.Longitude}
	// Prefilter precision follows the radius; a fixed precision would
	// drop stops beyond one cell width before the distance check.
	precision := utils.PrecisionForRadius(radiusKm, fix.Latitude)

	var intents []models.NotificationIntent
	for _, stop := range stops {
		if len(stop.RecipientIDs) == 0 {
			continue
		}

		stopPoint := utils.GeoPoint{Latitude: stop.Latitude, Longitude: stop.Longitude}
		// Geohash prefilter before the exact haversine distance.
		if !utils.InSameOrNeighborCell(fixPoint, stopPoint, precision) {
			continue
		}

		distanceKm := utils.CalculateDistance(fixPoint, stopPoint)
		if distanceKm > radiusKm {
			continue
		}

		message := nearbyMessage(fix.VehicleID, stop.Name, distanceKm)
		for _, recipientID := range stop.RecipientIDs {
			intents = append(intents, models.NotificationIntent{
				RecipientID: recipientID,
				VehicleID:   fix.VehicleID,
				Kind:        models.NotificationKindNearby,
				Message:     message,
			})
		}
	}

	return intents
}

func nearbyMessage(vehicleID, stopName string, distanceKm float64) string {
	return fmt.Sprintf("Bus %s is %.2f km from %s, arriving in about %d min",
		vehicleID, distanceKm, stopName, EstimateETAMinutes(distanceKm))
}

// EstimateETAMinutes is a rough arrival estimate of round(distanceKm*60)
// minutes. The constant bakes in an average-speed assumption; do not
// treat the result as calibrated.
func EstimateETAMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm * 60))
}
