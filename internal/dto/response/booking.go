package response

import (
	"time"

	"bus-ticketing/internal/data/entity"
	"bus-ticketing/pkg/utils"
)

type CustomerResponse struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email,omitempty"`
	Age    int    `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
}

type BookingResponse struct {
	ID          string               `json:"id"`
	OrderID     string               `json:"order_id"`
	TripID      string               `json:"trip_id"`
	AgentID     string               `json:"agent_id,omitempty"`
	Customer    CustomerResponse     `json:"customer"`
	SeatNumbers []int                `json:"seat_numbers"`
	TotalSeats  int                  `json:"total_seats"`
	TotalPrice  float64              `json:"total_price"`
	Status      entity.BookingStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

type CommissionSummaryResponse struct {
	AgentID string  `json:"agent_id"`
	Balance float64 `json:"balance"`
	Entries int64   `json:"entries"`
}

func BookingToResponse(b *entity.Booking, seats []int) BookingResponse {
	if seats == nil {
		seats = []int{}
	}
	return BookingResponse{
		ID:      b.ID.String(),
		OrderID: b.OrderID,
		TripID:  b.TripID.String(),
		AgentID: utils.Deref(b.AgentID),
		Customer: CustomerResponse{
			Name:   b.CustomerName,
			Phone:  b.CustomerPhone,
			Email:  utils.Deref(b.CustomerEmail),
			Age:    utils.Deref(b.CustomerAge),
			Gender: utils.Deref(b.CustomerGender),
		},
		SeatNumbers: seats,
		TotalSeats:  b.TotalSeats,
		TotalPrice:  b.TotalPrice,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}
