package models

import (
	"time"
)

// Vehicle status values. Status changes are administrative and owned by
// the external fleet service; this core only reads them.
const (
	VehicleStatusActive      = "active"
	VehicleStatusInactive    = "inactive"
	VehicleStatusMaintenance = "maintenance"
)

// Vehicle is the current-location snapshot for a bus. Latitude/longitude
// are nil until the first fix is applied.
type Vehicle struct {
	ID        string     `json:"id" db:"id"`
	Status    string     `json:"status" db:"status"`
	Latitude  *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64   `json:"longitude,omitempty" db:"longitude"`
	SpeedKmh  *float64   `json:"speed_kmh,omitempty" db:"speed_kmh"`
	Heading   *float64   `json:"heading,omitempty" db:"heading"`
	LastFixAt *time.Time `json:"last_fix_at,omitempty" db:"last_fix_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
