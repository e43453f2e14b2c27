// Package errors defines the domain error taxonomy shared by all services.
// Handlers map these sentinels to HTTP status codes; everything else is
// wrapped with fmt.Errorf("...: %w", err) and treated as a storage or
// infrastructure failure.
package errors

import "errors"

var (
	// ErrInvalidCoordinate is returned for out-of-range latitude/longitude
	ErrInvalidCoordinate = errors.New("latitude must be within [-90, 90] and longitude within [-180, 180]")

	// ErrInvalidStatus is returned for unrecognized attendance status values
	ErrInvalidStatus = errors.New("invalid attendance status")

	// ErrInvalidLeg is returned for unrecognized attendance leg values
	ErrInvalidLeg = errors.New("attendance leg must be pickup or dropoff")

	// ErrNotFound is returned when a vehicle, student or route does not resolve
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when the caller is not authorized for the
	// requested vehicle; the decision itself comes from claims minted by
	// the external auth service.
	ErrForbidden = errors.New("caller is not authorized for this resource")

	// ErrStorageUnavailable is returned when a transactional write could
	// not complete. The whole operation is aborted; no partial state is
	// left behind.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Is reports whether err matches target, re-exported so callers don't
// need a second errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
