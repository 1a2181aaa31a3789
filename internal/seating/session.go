package seating

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer is the traveller a booking is made for. Name and Phone are
// required; the rest is optional.
type Customer struct {
	Name   string
	Phone  string
	Email  string
	Age    int
	Gender Gender
}

func (c Customer) complete() bool {
	return strings.TrimSpace(c.Name) != "" && strings.TrimSpace(c.Phone) != ""
}

// Session stages the seats one customer intends to book on one trip.
// It holds no reference to a seat map; every toggle is checked against the
// map passed in. A Session is not safe for concurrent use.
type Session struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Customer  Customer
	CreatedAt time.Time

	pending map[int]struct{}
}

func NewSession(tripID uuid.UUID) *Session {
	return &Session{
		ID:        uuid.New(),
		TripID:    tripID,
		CreatedAt: time.Now(),
		pending:   make(map[int]struct{}),
	}
}

// Toggle adds or removes a seat from the pending set.
//
// Single seats toggle alone. For a double berth under paired booking the
// seat and its pair are added or removed together; adding fails with
// ErrPairUnavailable when the pair is taken. Above the pairing threshold a
// double seat toggles alone. On error the pending set is unchanged.
func (s *Session) Toggle(m *SeatMap, p Policy, number int) error {
	seat, ok := m.Seat(number)
	if !ok {
		return seatErr(number, ErrUnknownSeat)
	}
	if seat.Occupied {
		return seatErr(number, ErrSeatOccupied)
	}

	if !seat.HasPair() || !p.RequiresPairedBooking(m) {
		s.flip(number)
		return nil
	}

	if s.IsPending(number) {
		delete(s.pending, number)
		delete(s.pending, seat.Pair)
		return nil
	}

	pair, _ := m.Seat(seat.Pair)
	if pair.Occupied {
		return seatErr(pair.Number, ErrPairUnavailable)
	}
	s.pending[number] = struct{}{}
	s.pending[pair.Number] = struct{}{}
	return nil
}

func (s *Session) flip(number int) {
	if _, ok := s.pending[number]; ok {
		delete(s.pending, number)
		return
	}
	s.pending[number] = struct{}{}
}

func (s *Session) IsPending(number int) bool {
	_, ok := s.pending[number]
	return ok
}

// Pending returns the staged seat numbers in ascending (display) order.
func (s *Session) Pending() []int {
	out := make([]int, 0, len(s.pending))
	for n := range s.pending {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func (s *Session) PendingCount() int {
	return len(s.pending)
}

// Clear drops every staged seat.
func (s *Session) Clear() {
	s.pending = make(map[int]struct{})
}

func (s *Session) Clone() *Session {
	c := *s
	c.pending = make(map[int]struct{}, len(s.pending))
	for n := range s.pending {
		c.pending[n] = struct{}{}
	}
	return &c
}
