package tracking

import (
	"context"
	"time"

	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/repository"
)

type TrackingUseCase interface {
	Report(ctx context.Context, reference string, lat, lng float64) (*domain.Position, error)
	Latest(ctx context.Context, reference string) (*domain.Position, error)
	Watch(ctx context.Context, reference string) <-chan domain.Position
	Sweep(ctx context.Context) error
}

// PositionStore keeps the last reported position per booking reference.
type PositionStore interface {
	SetPosition(ctx context.Context, reference string, pos domain.Position) error
	GetPosition(ctx context.Context, reference string) (*domain.Position, error)
}

// Depot is where simulated moves start from when no position has been
// reported yet (Nairobi CBD).
var depot = domain.Position{Lat: -1.2921, Lng: 36.8219}

type TrackingService struct {
	positions    PositionStore
	bookings     repository.BookingRepository
	pollInterval time.Duration
	now          func() time.Time
}

func NewTrackingService(positions PositionStore, bookings repository.BookingRepository, pollInterval time.Duration) *TrackingService {
	return &TrackingService{
		positions:    positions,
		bookings:     bookings,
		pollInterval: pollInterval,
		now:          time.Now,
	}
}

// Report stores a mover-submitted position for a known booking.
func (s *TrackingService) Report(ctx context.Context, reference string, lat, lng float64) (*domain.Position, error) {
	if _, err := s.bookings.GetByReference(ctx, reference); err != nil {
		return nil, err
	}

	pos := domain.Position{
		Reference:  reference,
		Lat:        lat,
		Lng:        lng,
		RecordedAt: s.now(),
	}
	if err := s.positions.SetPosition(ctx, reference, pos); err != nil {
		return nil, err
	}
	return &pos, nil
}

func (s *TrackingService) Latest(ctx context.Context, reference string) (*domain.Position, error) {
	pos, err := s.positions.GetPosition(ctx, reference)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, domain.ErrNotFound
	}
	return pos, nil
}

// Watch polls for position updates and delivers fresh ones on the returned
// channel. The subscription lives exactly as long as ctx: cancellation stops
// the poller and closes the channel, so callers cannot leak a watch.
func (s *TrackingService) Watch(ctx context.Context, reference string) <-chan domain.Position {
	updates := make(chan domain.Position, 1)

	go func() {
		defer close(updates)

		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		var lastSeen time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				pos, err := s.positions.GetPosition(ctx, reference)
				if err != nil || pos == nil {
					continue
				}
				if !pos.RecordedAt.After(lastSeen) {
					continue
				}
				lastSeen = pos.RecordedAt

				select {
				case updates <- *pos:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return updates
}

// Sweep advances the simulated position of every booking moving today. Moves
// with no reported position start at the depot; the rest drift a fixed step
// per sweep, which is enough for demo clients to see the marker travel.
func (s *TrackingService) Sweep(ctx context.Context) error {
	records, err := s.bookings.List(ctx)
	if err != nil {
		return err
	}

	today := s.now().Format(domain.DateLayout)
	for _, record := range records {
		if record.MoveDate != today {
			continue
		}

		pos, err := s.positions.GetPosition(ctx, record.Reference)
		if err != nil {
			return err
		}
		next := domain.Position{Reference: record.Reference, RecordedAt: s.now()}
		if pos == nil {
			next.Lat, next.Lng = depot.Lat, depot.Lng
		} else {
			next.Lat = pos.Lat + 0.0008
			next.Lng = pos.Lng + 0.0005
		}
		if err := s.positions.SetPosition(ctx, record.Reference, next); err != nil {
			return err
		}
	}
	return nil
}

var _ TrackingUseCase = (*TrackingService)(nil)
