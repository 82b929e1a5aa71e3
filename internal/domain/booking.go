package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

// Completed is the only terminal status modeled; bookings are written once at
// confirmation and never transition afterwards.
const BookingStatusCompleted BookingStatus = "Completed"

// DateLayout is the normalized form of every move date in the system. ISO
// dates compare correctly as strings, which the availability check relies on.
const DateLayout = "2006-01-02"

// ParseMoveDate normalizes a candidate move date to DateLayout.
func ParseMoveDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: move date must be formatted as YYYY-MM-DD", ErrValidation)
	}
	return t.Format(DateLayout), nil
}

type ServiceSelection struct {
	Packing   bool `json:"packing"`
	Storage   bool `json:"storage"`
	Insurance bool `json:"insurance"`
}

type Route struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type BookingRecord struct {
	ID            int64            `json:"id,omitempty"`
	Reference     string           `json:"reference"`
	CreatedAt     time.Time        `json:"created_at"`
	Route         Route            `json:"route"`
	MoveDate      string           `json:"move_date"`
	AmountCents   int64            `json:"amount_cents"`
	Status        BookingStatus    `json:"status"`
	PaymentMethod string           `json:"payment_method"`
	Services      ServiceSelection `json:"services"`
	User          *UserSnapshot    `json:"user,omitempty"`
}

func (b *BookingRecord) Terminal() bool {
	return b.Status == BookingStatusCompleted
}

// NewReference builds a transaction reference for a confirmed booking.
func NewReference(at time.Time) string {
	return fmt.Sprintf("TXN-%d", at.UnixMilli())
}
