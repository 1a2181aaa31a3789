package seating

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is the result of a successful commit.
type Booking struct {
	ID          uuid.UUID
	TripID      uuid.UUID
	AgentID     string
	SeatNumbers []int
	Customer    Customer
	Amount      float64
	Commission  float64
	Status      BookingStatus
	CreatedAt   time.Time
}

// Trip carries what the allocator needs to know about a trip.
type Trip struct {
	ID         uuid.UUID
	TotalSeats int
	BaseFare   float64
}

// DefaultCommissionRate is the agent share of the seat fare.
const DefaultCommissionRate = 0.10

// Allocator validates a session against a seat map and turns it into a
// booking. It holds no state of its own; serialising commits per trip is
// the job of Inventory.
type Allocator struct {
	Policy         Policy
	Fare           Fare
	CommissionRate float64

	now   func() time.Time
	newID func() uuid.UUID
}

func NewAllocator(policy Policy, fare Fare, commissionRate float64) *Allocator {
	return &Allocator{
		Policy:         policy,
		Fare:           fare,
		CommissionRate: commissionRate,
		now:            time.Now,
		newID:          uuid.New,
	}
}

// Validate runs the commit checks against the current map in order:
// empty selection, customer details, seat availability, pairing rule.
// It returns the seats to claim in display order.
func (a *Allocator) Validate(s *Session, m *SeatMap) ([]int, error) {
	seats := s.Pending()
	if len(seats) == 0 {
		return nil, ErrEmptySelection
	}
	if !s.Customer.complete() {
		return nil, ErrIncompleteCustomerDetails
	}

	for _, n := range seats {
		seat, ok := m.Seat(n)
		if !ok {
			return nil, seatErr(n, ErrUnknownSeat)
		}
		if seat.Occupied {
			return nil, seatErr(n, ErrSeatNoLongerAvailable)
		}
	}

	if a.Policy.RequiresPairedBooking(m) {
		for _, n := range seats {
			seat, _ := m.Seat(n)
			if seat.HasPair() && !s.IsPending(seat.Pair) {
				return nil, seatErr(n, ErrPairingRuleViolation)
			}
		}
	}

	return seats, nil
}

// Prepare validates s against m and builds the booking it would produce.
// m is not modified.
func (a *Allocator) Prepare(trip Trip, s *Session, m *SeatMap, agentID string) (*Booking, error) {
	seats, err := a.Validate(s, m)
	if err != nil {
		return nil, err
	}

	commission := 0.0
	if agentID != "" {
		commission = RoundAmount(trip.BaseFare * float64(len(seats)) * a.CommissionRate)
	}

	return &Booking{
		ID:          a.newID(),
		TripID:      trip.ID,
		AgentID:     agentID,
		SeatNumbers: seats,
		Customer:    s.Customer,
		Amount:      a.Fare.Price(trip.BaseFare, len(seats)),
		Commission:  commission,
		Status:      BookingConfirmed,
		CreatedAt:   a.now(),
	}, nil
}

// Commit validates and, on success, marks the booked seats occupied in m.
// On error m is untouched.
func (a *Allocator) Commit(trip Trip, s *Session, m *SeatMap, agentID string) (*Booking, error) {
	b, err := a.Prepare(trip, s, m, agentID)
	if err != nil {
		return nil, err
	}
	m.occupy(b.SeatNumbers, b.Customer.Gender)
	return b, nil
}
