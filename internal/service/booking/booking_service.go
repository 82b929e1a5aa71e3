package booking

import (
	"context"
	"log"
	"time"

	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/kafka"
	"github.com/peacekuria/smartmove/internal/repository"
)

type BookingUseCase interface {
	CheckDate(ctx context.Context, moveDate string) error
	Confirm(ctx context.Context, draft *domain.BookingDraft, actor *domain.UserSnapshot) (*domain.BookingRecord, error)
	List(ctx context.Context, actor *domain.UserSnapshot) ([]domain.BookingRecord, error)
	GetByReference(ctx context.Context, reference string, actor *domain.UserSnapshot) (*domain.BookingRecord, error)
	Remove(ctx context.Context, reference string, actor *domain.UserSnapshot) error
}

type Cache interface {
	AcquireDateLock(ctx context.Context, moveDate string, ttl time.Duration) (bool, error)
	ReleaseDateLock(ctx context.Context, moveDate string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	pricing            domain.Pricing
	paymentMethod      string
	lockTTL            time.Duration
	now                func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithClock overrides the time source, mainly for tests pinning "today".
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	cache Cache,
	producer Producer,
	bookingTopic string,
	pricing domain.Pricing,
	paymentMethod string,
	lockTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:      bookings,
		cache:         cache,
		producer:      producer,
		bookingTopic:  bookingTopic,
		pricing:       pricing,
		paymentMethod: paymentMethod,
		lockTTL:       lockTTL,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CheckDate is the availability rule: no past dates, at most one booking per
// calendar date across the whole collection.
func (s *BookingService) CheckDate(ctx context.Context, moveDate string) error {
	normalized, err := domain.ParseMoveDate(moveDate)
	if err != nil {
		return err
	}

	today := s.now().Format(domain.DateLayout)
	if normalized < today {
		return domain.ErrPastDate
	}

	taken, err := s.bookings.ExistsForDate(ctx, normalized)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrDateUnavailable
	}
	return nil
}

// Confirm turns a finished draft into a persisted booking. The availability
// check runs again here, inside a date lock, to close the window between the
// interactive check and the commit.
func (s *BookingService) Confirm(ctx context.Context, draft *domain.BookingDraft, actor *domain.UserSnapshot) (*domain.BookingRecord, error) {
	if err := draft.ValidateForConfirmation(); err != nil {
		return nil, err
	}
	normalized, err := domain.ParseMoveDate(draft.MoveDate)
	if err != nil {
		return nil, err
	}

	locked := false
	if s.cache != nil {
		ok, err := s.cache.AcquireDateLock(ctx, normalized, s.lockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Another confirmation holds the date right now.
			return nil, domain.ErrDateUnavailable
		}
		locked = true
		defer func() {
			if locked {
				_ = s.cache.ReleaseDateLock(ctx, normalized)
			}
		}()
	}

	if err := s.CheckDate(ctx, normalized); err != nil {
		return nil, err
	}

	now := s.now()
	record := &domain.BookingRecord{
		Reference:     domain.NewReference(now),
		CreatedAt:     now,
		Route:         draft.RouteSummary(),
		MoveDate:      normalized,
		AmountCents:   s.pricing.Total(draft.Services),
		Status:        domain.BookingStatusCompleted,
		PaymentMethod: s.paymentMethod,
		Services:      draft.Services,
		User:          actor,
	}

	if err := s.bookings.Create(ctx, record); err != nil {
		return nil, err
	}

	notifyEmail := draft.Contact.Email
	if actor != nil {
		notifyEmail = actor.Email
	}
	if err := s.publish(ctx, "booking_confirmed", record, notifyEmail); err != nil {
		log.Printf("WARNING: failed to publish booking_confirmed for %s: %v", record.Reference, err)
	}
	return record, nil
}

// List returns the actor's bookings; admins see the full collection.
func (s *BookingService) List(ctx context.Context, actor *domain.UserSnapshot) ([]domain.BookingRecord, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	if actor.Role == domain.RoleAdmin {
		return s.bookings.List(ctx)
	}
	return s.bookings.ListByEmail(ctx, actor.Email)
}

func (s *BookingService) GetByReference(ctx context.Context, reference string, actor *domain.UserSnapshot) (*domain.BookingRecord, error) {
	record, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !canAccess(record, actor) {
		return nil, domain.ErrForbidden
	}
	return record, nil
}

// Remove deletes a completed booking. Irreversible, owner or admin only.
func (s *BookingService) Remove(ctx context.Context, reference string, actor *domain.UserSnapshot) error {
	record, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		return err
	}
	if !canAccess(record, actor) {
		return domain.ErrForbidden
	}
	if !record.Terminal() {
		return domain.ErrNotTerminal
	}

	if err := s.bookings.Remove(ctx, reference); err != nil {
		return err
	}
	notifyEmail := ""
	if record.User != nil {
		notifyEmail = record.User.Email
	}
	if err := s.publish(ctx, "booking_removed", record, notifyEmail); err != nil {
		log.Printf("WARNING: failed to publish booking_removed for %s: %v", record.Reference, err)
	}
	return nil
}

func canAccess(record *domain.BookingRecord, actor *domain.UserSnapshot) bool {
	if actor == nil {
		return false
	}
	if actor.Role == domain.RoleAdmin {
		return true
	}
	return record.User != nil && record.User.Email == actor.Email
}

func (s *BookingService) publish(ctx context.Context, eventType string, record *domain.BookingRecord, email string) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		Reference:   record.Reference,
		MoveDate:    record.MoveDate,
		RouteFrom:   record.Route.From,
		RouteTo:     record.Route.To,
		AmountCents: record.AmountCents,
		Email:       email,
		Status:      string(record.Status),
		CreatedAt:   record.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, record.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, record.Reference, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
