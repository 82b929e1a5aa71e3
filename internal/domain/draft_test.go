package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep_NeverLeavesBounds(t *testing.T) {
	step := FirstStep

	// Retreating from the first step does not move.
	if _, ok := step.Prev(); ok {
		t.Fatal("Prev at first step must signal flow exit, not a step change")
	}

	// Walk forward through every step.
	visited := []Step{step}
	for {
		next, ok := step.Next()
		if !ok {
			break
		}
		step = next
		visited = append(visited, step)
	}

	assert.Equal(t, LastStep, step)
	assert.Len(t, visited, 5)
	for _, s := range visited {
		assert.True(t, s.Valid())
	}

	// Advancing at the last step signals confirmation, not step 6.
	_, ok := step.Next()
	assert.False(t, ok)
	assert.Equal(t, LastStep, step)
}

func TestStep_Labels(t *testing.T) {
	assert.Equal(t, "Move Details", StepMoveDetails.Label())
	assert.Equal(t, "Payment", StepPayment.Label())
	assert.Equal(t, "Unknown", Step(0).Label())
}

func TestParseMoveDate(t *testing.T) {
	normalized, err := ParseMoveDate("2026-02-15")
	assert.NoError(t, err)
	assert.Equal(t, "2026-02-15", normalized)

	_, err = ParseMoveDate("15/02/2026")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseMoveDate("")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBookingDraft_RouteSummary(t *testing.T) {
	draft := NewDraft()
	draft.FromAddress = "123 Moi Ave"
	draft.FromCity = "Nairobi"
	draft.FromZip = "00100"
	draft.ToAddress = "45 Oginga St"
	draft.ToCity = "Kisumu"

	route := draft.RouteSummary()
	assert.Equal(t, "123 Moi Ave, Nairobi, 00100", route.From)
	assert.Equal(t, "45 Oginga St, Kisumu", route.To)
}

func TestBookingDraft_ValidateForConfirmation(t *testing.T) {
	draft := NewDraft()
	assert.ErrorIs(t, draft.ValidateForConfirmation(), ErrValidation)

	draft.MoveDate = "2026-02-15"
	assert.ErrorIs(t, draft.ValidateForConfirmation(), ErrValidation)

	draft.Contact = Contact{Name: "Jane Wanjiru", Email: "jane@example.com"}
	assert.NoError(t, draft.ValidateForConfirmation())
}

func TestEnums(t *testing.T) {
	assert.True(t, MoveTypeLocal.Valid())
	assert.True(t, MoveTypeOffice.Valid())
	assert.False(t, MoveType("overseas").Valid())

	assert.True(t, HomeSizeBedsitter.Valid())
	assert.True(t, HomeSizeFourBR.Valid())
	assert.False(t, HomeSize("mansion").Valid())
}
