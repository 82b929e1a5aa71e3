package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/kvstore"
)

// DefaultBookingsKey is the storage key the booking collection lives under in
// the key-value backend.
const DefaultBookingsKey = "smartmove_bookings"

// KVBookingRepository keeps the whole booking collection as one JSON array
// under a fixed key, mirroring the original browser-storage substrate. A
// missing or corrupted payload degrades to an empty collection instead of
// failing, so callers always see a usable store.
type KVBookingRepository struct {
	mu    sync.Mutex
	store kvstore.Store
	key   string
}

func NewKVBookingRepository(store kvstore.Store, key string) *KVBookingRepository {
	if key == "" {
		key = DefaultBookingsKey
	}
	return &KVBookingRepository{store: store, key: key}
}

func (r *KVBookingRepository) List(ctx context.Context) ([]domain.BookingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *KVBookingRepository) ListByEmail(ctx context.Context, email string) ([]domain.BookingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	matched := make([]domain.BookingRecord, 0)
	for _, b := range records {
		if b.User != nil && b.User.Email == email {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (r *KVBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.BookingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Reference == reference {
			b := records[i]
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *KVBookingRepository) ExistsForDate(ctx context.Context, moveDate string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return false, err
	}
	for _, b := range records {
		if b.MoveDate == moveDate {
			return true, nil
		}
	}
	return false, nil
}

// Create re-checks the date inside the same critical section as the write, so
// a concurrent confirm in this process cannot slip a duplicate in between.
func (r *KVBookingRepository) Create(ctx context.Context, booking *domain.BookingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	for _, b := range records {
		if b.MoveDate == booking.MoveDate {
			return domain.ErrDateUnavailable
		}
	}
	booking.ID = int64(len(records) + 1)
	records = append(records, *booking)
	return r.save(records)
}

func (r *KVBookingRepository) Remove(ctx context.Context, reference string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].Reference != reference {
			continue
		}
		if !records[i].Terminal() {
			return domain.ErrNotTerminal
		}
		records = append(records[:i], records[i+1:]...)
		return r.save(records)
	}
	return domain.ErrNotFound
}

func (r *KVBookingRepository) load() ([]domain.BookingRecord, error) {
	data, ok, err := r.store.Get(r.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.BookingRecord{}, nil
	}

	var records []domain.BookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// Corrupted payload: treat the store as empty rather than surfacing
		// a hard failure to the caller.
		return []domain.BookingRecord{}, nil
	}
	return records, nil
}

func (r *KVBookingRepository) save(records []domain.BookingRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.store.Set(r.key, payload)
}

var _ BookingRepository = (*KVBookingRepository)(nil)
