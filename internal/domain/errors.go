package domain

import "errors"

var (
	ErrMissingParameter   = errors.New("missing parameter")
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrInvalidStayRange   = errors.New("invalid stay range")
	ErrInvalidArrivalDate = errors.New("stay outside the allowed booking window")
	ErrInvalidEmail       = errors.New("invalid email")
)

var (
	ErrReservationNotFound      = errors.New("reservation not found")
	ErrReservationAlreadyExists = errors.New("an active reservation already overlaps the requested dates")
	ErrReservationCancelled     = errors.New("reservation is cancelled and can no longer be updated")
	ErrAlreadyCancelled         = errors.New("reservation is already cancelled")
)

var (
	ErrCapacityExhausted   = errors.New("no availability left")
	ErrTooHighDemand       = errors.New("could not acquire reservation lock, too high demand")
	ErrConcurrencyConflict = errors.New("concurrent modification detected")
)
