package entity

import (
	"time"

	"github.com/google/uuid"
)

// TripSeat is the persisted occupancy of one seat on one trip.
type TripSeat struct {
	TripID         uuid.UUID `db:"trip_id"`
	SeatNumber     int       `db:"seat_number"` // 1..total_seats
	Occupied       bool      `db:"occupied"`
	OccupantGender *string   `db:"occupant_gender"`
	UpdatedAt      time.Time `db:"updated_at"`
}
