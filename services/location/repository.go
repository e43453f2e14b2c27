package location

import (
	"context"
	"time"

	"github.com/schoolroute/bustrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/schoolroute/bustrack/services/location LocationRepo,LocationCache

// LocationRepo is the authoritative store for vehicles and fix history
type LocationRepo interface {
	// GetVehicle returns the vehicle snapshot, or ErrNotFound
	GetVehicle(ctx context.Context, vehicleID string) (*models.Vehicle, error)

	// RecordFix appends the fix to history and, when the fix is newer
	// than the stored snapshot, updates the vehicle snapshot. Both
	// writes happen in one transaction. The returned flag reports
	// whether the snapshot was advanced.
	RecordFix(ctx context.Context, fix *models.LocationFix) (bool, error)

	// GetVehicles returns the snapshots for the given vehicle IDs,
	// skipping unknown IDs
	GetVehicles(ctx context.Context, vehicleIDs []string) ([]models.Vehicle, error)

	// GetLocationHistory returns fixes for a vehicle within [from, to],
	// newest first, capped at limit
	GetLocationHistory(ctx context.Context, vehicleID string, from, to time.Time, limit int) ([]models.LocationFix, error)
}

// LocationCache is the live read cache in front of LocationRepo
type LocationCache interface {
	// SetLiveLocation overwrites the cached live location and geo index
	// entry for the fix's vehicle
	SetLiveLocation(ctx context.Context, fix *models.LocationFix) error

	// GetLiveLocation returns the cached live location, or ErrNotFound
	// on a cache miss
	GetLiveLocation(ctx context.Context, vehicleID string) (*models.VehicleLocation, error)

	// NearbyVehicleIDs returns IDs of vehicles within radiusKm of the
	// point, from the geo index
	NearbyVehicleIDs(ctx context.Context, lat, lon, radiusKm float64) ([]string, error)
}
