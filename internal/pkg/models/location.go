package models

import (
	"time"

	"github.com/google/uuid"
)

// Location represents a geographical point
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// LocationFix is one immutable GPS telemetry sample for a vehicle.
// Fixes are append-only; RecordedAt is the server receipt time, not the
// device clock.
type LocationFix struct {
	ID         uuid.UUID `json:"id" db:"id"`
	VehicleID  string    `json:"vehicle_id" db:"vehicle_id"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	SpeedKmh   float64   `json:"speed_kmh" db:"speed_kmh"`
	Heading    *float64  `json:"heading,omitempty" db:"heading"`
	Geohash    string    `json:"geohash" db:"geohash"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// FixRequest is the inbound payload for fix ingestion (HTTP body or NATS
// message). Speed and heading are optional; a missing speed is treated
// as 0.
type FixRequest struct {
	VehicleID string   `json:"vehicle_id"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	SpeedKmh  *float64 `json:"speed_kmh,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
}

// VehicleLocation is the live-view projection of a vehicle's latest fix
type VehicleLocation struct {
	VehicleID    string    `json:"vehicle_id"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	SpeedKmh     float64   `json:"speed_kmh"`
	Heading      *float64  `json:"heading,omitempty"`
	LastUpdateAt time.Time `json:"last_update_at"`
}
