package location

import (
	"context"
	"time"

	"github.com/schoolroute/bustrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/schoolroute/bustrack/services/location LocationUC

// LocationUC defines the location service usecase operations
type LocationUC interface {
	// IngestFix validates and persists one GPS fix, refreshes the live
	// cache and runs the proximity and speed evaluations on the result
	IngestFix(ctx context.Context, req *models.FixRequest) (*models.LocationFix, error)

	// LiveLocations returns the latest known location for every vehicle
	// the caller is allowed to see
	LiveLocations(ctx context.Context, callerID, callerRole string) ([]models.VehicleLocation, error)

	// CurrentLocation returns the latest known location of one vehicle
	CurrentLocation(ctx context.Context, vehicleID string) (*models.VehicleLocation, error)

	// History returns historical fixes for a vehicle, newest first
	History(ctx context.Context, vehicleID string, from, to time.Time, limit int) ([]models.LocationFix, error)

	// NearbyVehicles returns vehicles within radiusKm of a point, based
	// on the live cache geo index
	NearbyVehicles(ctx context.Context, lat, lon, radiusKm float64) ([]models.VehicleLocation, error)
}
