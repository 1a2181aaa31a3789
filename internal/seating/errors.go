package seating

import (
	"errors"
	"fmt"
)

var (
	// selection
	ErrUnknownSeat     = errors.New("seat does not exist")
	ErrSeatOccupied    = errors.New("seat is occupied")
	ErrPairUnavailable = errors.New("paired seat is unavailable")

	// commit validation
	ErrEmptySelection            = errors.New("no seats selected")
	ErrIncompleteCustomerDetails = errors.New("customer name and phone are required")
	ErrPairingRuleViolation      = errors.New("selection violates the paired booking rule")

	// contention
	ErrSeatNoLongerAvailable = errors.New("seat no longer available, please reselect")

	ErrConfiguration = errors.New("seat map configuration error")
	ErrTripNotFound  = errors.New("trip not found")
)

// Kind groups errors by who can act on them.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation errors are corrected by the caller.
	KindValidation
	// KindContention errors are resolved by refetching the seat map and reselecting.
	KindContention
	// KindConfiguration errors point at deployment or data bugs.
	KindConfiguration
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindContention:
		return "contention"
	case KindConfiguration:
		return "configuration"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// KindOf classifies err by the sentinel it wraps.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrUnknownSeat),
		errors.Is(err, ErrSeatOccupied),
		errors.Is(err, ErrPairUnavailable),
		errors.Is(err, ErrEmptySelection),
		errors.Is(err, ErrIncompleteCustomerDetails),
		errors.Is(err, ErrPairingRuleViolation):
		return KindValidation
	case errors.Is(err, ErrSeatNoLongerAvailable):
		return KindContention
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrTripNotFound):
		return KindNotFound
	default:
		return KindUnknown
	}
}

// SeatError ties a sentinel to the seat that caused it.
type SeatError struct {
	Seat int
	Err  error
}

func (e *SeatError) Error() string {
	return fmt.Sprintf("seat %d: %v", e.Seat, e.Err)
}

func (e *SeatError) Unwrap() error {
	return e.Err
}

func seatErr(seat int, err error) error {
	return &SeatError{Seat: seat, Err: err}
}
