package models

// Stop is a route stop as served by the external roster service.
// Read-only from this core's perspective.
type Stop struct {
	ID           string   `json:"id"`
	RouteID      string   `json:"route_id"`
	Name         string   `json:"name"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	RecipientIDs []string `json:"recipient_ids"`
}
