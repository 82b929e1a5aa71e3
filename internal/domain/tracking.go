package domain

import "time"

// Position is the last reported mover location for a booking.
type Position struct {
	Reference  string    `json:"reference"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
}
