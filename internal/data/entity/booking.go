package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	BaseNoDelete
	OrderID        string        `db:"order_id"`
	TripID         uuid.UUID     `db:"trip_id"`
	AgentID        *string       `db:"agent_id"`
	CustomerName   string        `db:"customer_name"`
	CustomerPhone  string        `db:"customer_phone"`
	CustomerEmail  *string       `db:"customer_email"`
	CustomerAge    *int          `db:"customer_age"`
	CustomerGender *string       `db:"customer_gender"`
	TotalSeats     int           `db:"total_seats"`
	TotalPrice     float64       `db:"total_price"`
	Status         BookingStatus `db:"status"`
}
