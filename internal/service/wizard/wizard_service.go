package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/service/booking"
)

type WizardUseCase interface {
	Start(ctx context.Context) (string, *domain.BookingDraft, error)
	Get(ctx context.Context, token string) (*domain.BookingDraft, error)
	Update(ctx context.Context, token string, patch DraftPatch) (*domain.BookingDraft, error)
	Advance(ctx context.Context, token string, actor *domain.UserSnapshot) (*StepResult, error)
	Retreat(ctx context.Context, token string) (*StepResult, error)
}

// SessionStore holds in-progress drafts keyed by session token. Drafts that
// are never confirmed expire out of the store.
type SessionStore interface {
	SaveDraft(ctx context.Context, token string, draft *domain.BookingDraft) error
	GetDraft(ctx context.Context, token string) (*domain.BookingDraft, error)
	DeleteDraft(ctx context.Context, token string) error
}

// StepResult reports what a navigation request did: a step change, an exit
// from the flow, or a confirmed booking with the landing route to show next.
type StepResult struct {
	Step      domain.Step
	Label     string
	Confirmed bool
	Exited    bool
	Booking   *domain.BookingRecord
	Landing   string
}

// DraftPatch is a partial draft update; nil fields are left untouched.
type DraftPatch struct {
	MoveType    *string `json:"move_type"`
	MoveDate    *string `json:"move_date"`
	FromAddress *string `json:"from_address"`
	FromCity    *string `json:"from_city"`
	FromZip     *string `json:"from_zip"`
	ToAddress   *string `json:"to_address"`
	ToCity      *string `json:"to_city"`
	ToZip       *string `json:"to_zip"`
	HomeSize    *string `json:"home_size"`
	ItemCount   *int    `json:"item_count"`
	Packing     *bool   `json:"packing"`
	Storage     *bool   `json:"storage"`
	Insurance   *bool   `json:"insurance"`
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
}

type WizardService struct {
	sessions SessionStore
	bookings booking.BookingUseCase
}

func NewWizardService(sessions SessionStore, bookings booking.BookingUseCase) *WizardService {
	return &WizardService{sessions: sessions, bookings: bookings}
}

func (s *WizardService) Start(ctx context.Context) (string, *domain.BookingDraft, error) {
	token := uuid.NewString()
	draft := domain.NewDraft()
	if err := s.sessions.SaveDraft(ctx, token, draft); err != nil {
		return "", nil, err
	}
	return token, draft, nil
}

func (s *WizardService) Get(ctx context.Context, token string) (*domain.BookingDraft, error) {
	draft, err := s.sessions.GetDraft(ctx, token)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, domain.ErrNotFound
	}
	return draft, nil
}

func (s *WizardService) Update(ctx context.Context, token string, patch DraftPatch) (*domain.BookingDraft, error) {
	draft, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := applyPatch(draft, patch); err != nil {
		return nil, err
	}
	if err := s.sessions.SaveDraft(ctx, token, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Advance moves one step forward, or confirms when already at the last step.
// Leaving the first step requires a move date that passes the interactive
// availability check; an availability conflict discovered at confirmation
// resets the draft to the first step before the error is returned.
func (s *WizardService) Advance(ctx context.Context, token string, actor *domain.UserSnapshot) (*StepResult, error) {
	draft, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if draft.Step == domain.StepMoveDetails {
		if draft.MoveDate == "" {
			return nil, fmt.Errorf("%w: select a move date first", domain.ErrValidation)
		}
		if err := s.bookings.CheckDate(ctx, draft.MoveDate); err != nil {
			return nil, err
		}
	}

	if next, ok := draft.Step.Next(); ok {
		draft.Step = next
		if err := s.sessions.SaveDraft(ctx, token, draft); err != nil {
			return nil, err
		}
		return &StepResult{Step: draft.Step, Label: draft.Step.Label()}, nil
	}

	record, err := s.bookings.Confirm(ctx, draft, actor)
	if err != nil {
		if isConflict(err) {
			draft.Step = domain.FirstStep
			_ = s.sessions.SaveDraft(ctx, token, draft)
		}
		return nil, err
	}

	_ = s.sessions.DeleteDraft(ctx, token)

	landing := domain.LandingRoute("")
	if actor != nil {
		landing = domain.LandingRoute(actor.Role)
	}
	return &StepResult{
		Step:      draft.Step,
		Label:     draft.Step.Label(),
		Confirmed: true,
		Booking:   record,
		Landing:   landing,
	}, nil
}

// Retreat moves one step back; at the first step it signals the caller to
// leave the flow, and the draft is discarded.
func (s *WizardService) Retreat(ctx context.Context, token string) (*StepResult, error) {
	draft, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if prev, ok := draft.Step.Prev(); ok {
		draft.Step = prev
		if err := s.sessions.SaveDraft(ctx, token, draft); err != nil {
			return nil, err
		}
		return &StepResult{Step: draft.Step, Label: draft.Step.Label()}, nil
	}

	_ = s.sessions.DeleteDraft(ctx, token)
	return &StepResult{Step: draft.Step, Label: draft.Step.Label(), Exited: true, Landing: "/"}, nil
}

func isConflict(err error) bool {
	return errors.Is(err, domain.ErrDateUnavailable) || errors.Is(err, domain.ErrPastDate)
}

func applyPatch(draft *domain.BookingDraft, patch DraftPatch) error {
	if patch.MoveType != nil {
		mt := domain.MoveType(*patch.MoveType)
		if *patch.MoveType != "" && !mt.Valid() {
			return fmt.Errorf("%w: unknown move type %q", domain.ErrValidation, *patch.MoveType)
		}
		draft.MoveType = mt
	}
	if patch.MoveDate != nil {
		if *patch.MoveDate == "" {
			draft.MoveDate = ""
		} else {
			normalized, err := domain.ParseMoveDate(*patch.MoveDate)
			if err != nil {
				return err
			}
			draft.MoveDate = normalized
		}
	}
	if patch.FromAddress != nil {
		draft.FromAddress = *patch.FromAddress
	}
	if patch.FromCity != nil {
		draft.FromCity = *patch.FromCity
	}
	if patch.FromZip != nil {
		draft.FromZip = *patch.FromZip
	}
	if patch.ToAddress != nil {
		draft.ToAddress = *patch.ToAddress
	}
	if patch.ToCity != nil {
		draft.ToCity = *patch.ToCity
	}
	if patch.ToZip != nil {
		draft.ToZip = *patch.ToZip
	}
	if patch.HomeSize != nil {
		hs := domain.HomeSize(*patch.HomeSize)
		if *patch.HomeSize != "" && !hs.Valid() {
			return fmt.Errorf("%w: unknown home size %q", domain.ErrValidation, *patch.HomeSize)
		}
		draft.HomeSize = hs
	}
	if patch.ItemCount != nil {
		if *patch.ItemCount < 0 {
			return fmt.Errorf("%w: item count cannot be negative", domain.ErrValidation)
		}
		draft.ItemCount = *patch.ItemCount
	}
	if patch.Packing != nil {
		draft.Services.Packing = *patch.Packing
	}
	if patch.Storage != nil {
		draft.Services.Storage = *patch.Storage
	}
	if patch.Insurance != nil {
		draft.Services.Insurance = *patch.Insurance
	}
	if patch.Name != nil {
		draft.Contact.Name = *patch.Name
	}
	if patch.Phone != nil {
		draft.Contact.Phone = *patch.Phone
	}
	if patch.Email != nil {
		draft.Contact.Email = *patch.Email
	}
	return nil
}

var _ WizardUseCase = (*WizardService)(nil)
