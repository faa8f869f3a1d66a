package models

import (
	"errors"
	"strings"
)

var (
	ErrUnknownCity     = errors.New("unknown city")
	ErrSameCity        = errors.New("origin and destination must differ")
	ErrUnknownAirport  = errors.New("unknown airport code")
	ErrUnknownAircraft = errors.New("unknown aircraft model")
	ErrUnknownCabin    = errors.New("cabin not offered on this aircraft")
	ErrBookingNotFound = errors.New("booking not found")
	ErrSessionNotFound = errors.New("session not found")
)

// PassengerValidationError carries the per-field failure messages for
// one or more passengers. An empty failure list never produces one.
type PassengerValidationError struct {
	Failures []string
}

func (e *PassengerValidationError) Error() string {
	return "invalid passenger details: " + strings.Join(e.Failures, "; ")
}
