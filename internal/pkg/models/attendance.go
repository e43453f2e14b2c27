package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance legs
const (
	AttendanceLegPickup  = "pickup"
	AttendanceLegDropoff = "dropoff"
)

// Attendance statuses
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
	AttendanceStatusExcused = "excused"
)

// ValidAttendanceStatus reports whether s is a recognized status value
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate, AttendanceStatusExcused:
		return true
	}
	return false
}

// ValidAttendanceLeg reports whether l is a recognized leg value
func ValidAttendanceLeg(l string) bool {
	return l == AttendanceLegPickup || l == AttendanceLegDropoff
}

// AttendanceRecord is unique on (student, vehicle, date, leg). A second
// mark for the same key updates the record in place.
type AttendanceRecord struct {
	ID         uuid.UUID `json:"id" db:"id"`
	StudentID  string    `json:"student_id" db:"student_id"`
	VehicleID  string    `json:"vehicle_id" db:"vehicle_id"`
	RouteID    string    `json:"route_id" db:"route_id"`
	Date       time.Time `json:"date" db:"date"`
	Leg        string    `json:"leg" db:"leg"`
	Status     string    `json:"status" db:"status"`
	CheckInAt  time.Time `json:"check_in_at" db:"check_in_at"`
	Latitude   *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude  *float64  `json:"longitude,omitempty" db:"longitude"`
	RecordedBy string    `json:"recorded_by" db:"recorded_by"`
}

// Attendance mark outcomes
const (
	AttendanceActionCreated = "created"
	AttendanceActionUpdated = "updated"
)

// MarkAttendanceRequest is the inbound payload for marking attendance
type MarkAttendanceRequest struct {
	StudentID string   `json:"student_id"`
	VehicleID string   `json:"vehicle_id"`
	RouteID   string   `json:"route_id"`
	Leg       string   `json:"leg"`
	Status    string   `json:"status"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// MarkAttendanceResult reports whether the mark created or updated a record
type MarkAttendanceResult struct {
	Action string            `json:"action"`
	Record *AttendanceRecord `json:"record"`
}
