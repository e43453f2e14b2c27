package location

import (
	"context"

	"github.com/schoolroute/bustrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/schoolroute/bustrack/services/location RosterGW

// RosterGW reads route, stop and subscription data from the external
// roster service. All of it is authoritative there; this core never
// writes it.
type RosterGW interface {
	// StopsForVehicle returns the stops on the vehicle's active routes,
	// each with its subscribed recipient IDs
	StopsForVehicle(ctx context.Context, vehicleID string) ([]models.Stop, error)

	// RecipientsForVehicle returns the guardian IDs of all students
	// currently assigned to the vehicle
	RecipientsForVehicle(ctx context.Context, vehicleID string) ([]string, error)

	// AccessibleVehicles returns the vehicle IDs the caller may see,
	// scoped by role (guardians see their children's buses, ops sees
	// the fleet)
	AccessibleVehicles(ctx context.Context, callerID, callerRole string) ([]string, error)
}
