package attendance

import "context"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/schoolroute/bustrack/services/attendance RosterGW

// RosterGW resolves students and their assignments against the external
// roster service
type RosterGW interface {
	// ResolveAssignment verifies that the student, vehicle and route all
	// exist and belong together on the roster. Returns ErrNotFound when
	// any of them does not resolve.
	ResolveAssignment(ctx context.Context, studentID, vehicleID, routeID string) error

	// StudentGuardians returns the guardian IDs of a student, or
	// ErrNotFound when the student does not resolve
	StudentGuardians(ctx context.Context, studentID string) ([]string, error)
}
