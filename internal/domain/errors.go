package domain

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP status
// codes; everything else is treated as an internal error.
var (
	ErrValidation         = errors.New("validation failed")
	ErrPastDate           = errors.New("move date is in the past")
	ErrDateUnavailable    = errors.New("move date is already booked")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrNotTerminal        = errors.New("booking is not completed")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
