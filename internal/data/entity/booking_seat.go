package entity

import "github.com/google/uuid"

type BookingSeat struct {
	BaseSimple
	BookingID  uuid.UUID `db:"booking_id"`
	TripID     uuid.UUID `db:"trip_id"`
	SeatNumber int       `db:"seat_number"`
	Position   int       `db:"position"` // display order within the booking
}
