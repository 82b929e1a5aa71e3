package domain

import (
	"fmt"
	"strings"
)

// Step is one of the five wizard steps. Transitions only ever move by one
// step, so the step can never leave [StepMoveDetails, StepPayment].
type Step int

const (
	StepMoveDetails Step = iota + 1
	StepHomeDetails
	StepServices
	StepContact
	StepPayment
)

const (
	FirstStep = StepMoveDetails
	LastStep  = StepPayment
)

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s Step) Label() string {
	switch s {
	case StepMoveDetails:
		return "Move Details"
	case StepHomeDetails:
		return "Home Details"
	case StepServices:
		return "Services"
	case StepContact:
		return "Contact Info"
	case StepPayment:
		return "Payment"
	}
	return "Unknown"
}

// Next returns the following step. ok is false at the last step, where
// advancing means confirmation rather than a step change.
func (s Step) Next() (Step, bool) {
	if s < LastStep {
		return s + 1, true
	}
	return s, false
}

// Prev returns the preceding step. ok is false at the first step, where
// retreating means leaving the flow entirely.
func (s Step) Prev() (Step, bool) {
	if s > FirstStep {
		return s - 1, true
	}
	return s, false
}

type MoveType string

const (
	MoveTypeLocal     MoveType = "local"
	MoveTypeIntercity MoveType = "intercity"
	MoveTypeOffice    MoveType = "office"
)

func (m MoveType) Valid() bool {
	switch m {
	case MoveTypeLocal, MoveTypeIntercity, MoveTypeOffice:
		return true
	}
	return false
}

type HomeSize string

const (
	HomeSizeBedsitter HomeSize = "bedsitter"
	HomeSizeStudio    HomeSize = "studio"
	HomeSizeOneBR     HomeSize = "1br"
	HomeSizeTwoBR     HomeSize = "2br"
	HomeSizeThreeBR   HomeSize = "3br"
	HomeSizeFourBR    HomeSize = "4br+"
)

func (h HomeSize) Valid() bool {
	switch h {
	case HomeSizeBedsitter, HomeSizeStudio, HomeSizeOneBR, HomeSizeTwoBR, HomeSizeThreeBR, HomeSizeFourBR:
		return true
	}
	return false
}

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// BookingDraft is the in-progress wizard state for one session. It is held in
// the session store only and discarded if the visitor never confirms.
type BookingDraft struct {
	MoveType    MoveType         `json:"move_type"`
	MoveDate    string           `json:"move_date"`
	FromAddress string           `json:"from_address"`
	FromCity    string           `json:"from_city"`
	FromZip     string           `json:"from_zip"`
	ToAddress   string           `json:"to_address"`
	ToCity      string           `json:"to_city"`
	ToZip       string           `json:"to_zip"`
	HomeSize    HomeSize         `json:"home_size"`
	ItemCount   int              `json:"item_count"`
	Services    ServiceSelection `json:"services"`
	Contact     Contact          `json:"contact"`
	Step        Step             `json:"step"`
}

func NewDraft() *BookingDraft {
	return &BookingDraft{Step: FirstStep}
}

// RouteSummary concatenates the address fields into the from/to strings that
// end up on the persisted booking record.
func (d *BookingDraft) RouteSummary() Route {
	return Route{
		From: joinAddress(d.FromAddress, d.FromCity, d.FromZip),
		To:   joinAddress(d.ToAddress, d.ToCity, d.ToZip),
	}
}

func joinAddress(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

// ValidateForConfirmation is the minimal gate applied before a draft becomes
// a booking: a move date and a reachable contact.
func (d *BookingDraft) ValidateForConfirmation() error {
	if d.MoveDate == "" {
		return fmt.Errorf("%w: move date is required", ErrValidation)
	}
	if strings.TrimSpace(d.Contact.Name) == "" {
		return fmt.Errorf("%w: contact name is required", ErrValidation)
	}
	if strings.TrimSpace(d.Contact.Email) == "" {
		return fmt.Errorf("%w: contact email is required", ErrValidation)
	}
	return nil
}
