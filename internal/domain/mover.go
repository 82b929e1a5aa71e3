package domain

import "time"

type Mover struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Avatar          string    `json:"avatar"`
	Rating          float64   `json:"rating"`
	Reviews         int       `json:"reviews"`
	PricePerKmCents int64     `json:"price_per_km_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
