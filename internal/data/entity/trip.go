package entity

import (
	"time"
)

type Trip struct {
	BaseNoDelete
	RouteName      string    `db:"route_name"`
	DepartureAt    time.Time `db:"departure_at"`
	TotalSeats     int       `db:"total_seats"`
	BaseFare       float64   `db:"base_fare"`
	AvailableSeats int       `db:"available_seats"`
}
