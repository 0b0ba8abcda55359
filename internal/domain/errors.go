package domain

import "errors"

// Error kinds surfaced by the core. The web layer dispatches on these with
// errors.Is; anything else is reported as an internal error.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidRange    = errors.New("invalid date range")
	ErrRoomUnavailable = errors.New("room unavailable")
	ErrForbidden       = errors.New("forbidden")
	ErrNotCancelable   = errors.New("booking not cancelable")
	ErrInvalidAmount   = errors.New("invalid payment amount")
	ErrOverPayment     = errors.New("amount exceeds remaining balance")
	ErrInvalidMethod   = errors.New("invalid payment method")
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrTerminalStatus  = errors.New("booking is in a terminal status")
	ErrEmailTaken      = errors.New("email already registered")
)
