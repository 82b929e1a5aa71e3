package repository

import (
	"context"

	"github.com/peacekuria/smartmove/internal/domain"
)

// BookingRepository is the append-only booking store. Create must refuse a
// second record for an already-booked move date with domain.ErrDateUnavailable
// and Remove must refuse non-terminal records with domain.ErrNotTerminal.
type BookingRepository interface {
	List(ctx context.Context) ([]domain.BookingRecord, error)
	ListByEmail(ctx context.Context, email string) ([]domain.BookingRecord, error)
	GetByReference(ctx context.Context, reference string) (*domain.BookingRecord, error)
	ExistsForDate(ctx context.Context, moveDate string) (bool, error)
	Create(ctx context.Context, booking *domain.BookingRecord) error
	Remove(ctx context.Context, reference string) error
}
