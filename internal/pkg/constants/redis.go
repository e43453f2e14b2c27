package constants

// Redis key formats
const (
	// Location service
	KeyVehicleLocation = "vehicle:location:%s" // Format: vehicle:location:{vehicle_id}
	KeyVehicleGeo      = "vehicles:geo"        // Geo set of all vehicle positions

	// Notification service
	KeyNotifyCooldown = "notify:cooldown:%s:%s:%s" // Format: notify:cooldown:{recipient}:{vehicle}:{kind}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldSpeed     = "speed"
	FieldHeading   = "heading"
	FieldTimestamp = "ts"
)
