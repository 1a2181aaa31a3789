package seating

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customerA = Customer{Name: "A", Phone: "1", Gender: GenderFemale}

func newAllocator() *Allocator {
	a := NewAllocator(DefaultPolicy(), DefaultFare(), DefaultCommissionRate)
	a.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }
	return a
}

func testTrip() Trip {
	return Trip{ID: uuid.New(), TotalSeats: 36, BaseFare: 45}
}

func sessionWith(t *testing.T, trip Trip, m *SeatMap, seats ...int) *Session {
	t.Helper()
	s := NewSession(trip.ID)
	s.Customer = customerA
	for _, n := range seats {
		require.NoError(t, s.Toggle(m, DefaultPolicy(), n))
	}
	return s
}

func TestCommitSingleSeat(t *testing.T) {
	a := newAllocator()
	trip := testTrip()
	m := newMap(t)
	s := sessionWith(t, trip, m, 25)

	b, err := a.Commit(trip, s, m, "")
	require.NoError(t, err)

	assert.Equal(t, []int{25}, b.SeatNumbers)
	assert.Equal(t, 50.50, b.Amount)
	assert.Equal(t, BookingConfirmed, b.Status)
	assert.Equal(t, trip.ID, b.TripID)
	assert.Equal(t, customerA, b.Customer)
	assert.Zero(t, b.Commission)
	assert.NotEqual(t, uuid.Nil, b.ID)

	seat, _ := m.Seat(25)
	assert.True(t, seat.Occupied)
	assert.Equal(t, GenderFemale, seat.OccupantGender)
	assert.Equal(t, 35, m.AvailableCount())
}

func TestCommitPairBelowThreshold(t *testing.T) {
	a := newAllocator()
	trip := testTrip()
	m := newMap(t)
	occupyUntil(t, m, 18, 1, 2)
	s := sessionWith(t, trip, m, 1)
	require.Equal(t, []int{1, 2}, s.Pending())

	b, err := a.Commit(trip, s, m, "agent-7")
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, b.SeatNumbers)
	assert.Equal(t, 45*2+5.50, b.Amount)
	assert.Equal(t, "agent-7", b.AgentID)
	assert.Equal(t, 9.0, b.Commission)

	for _, n := range []int{1, 2} {
		seat, _ := m.Seat(n)
		assert.True(t, seat.Occupied, "seat %d", n)
	}
	assert.Equal(t, 20, m.OccupiedCount())
}

func TestCommitRejections(t *testing.T) {
	a := newAllocator()
	trip := testTrip()

	t.Run("empty selection", func(t *testing.T) {
		m := newMap(t)
		s := sessionWith(t, trip, m)

		_, err := a.Commit(trip, s, m, "")
		assert.ErrorIs(t, err, ErrEmptySelection)
		assert.Equal(t, KindValidation, KindOf(err))
	})

	t.Run("missing customer details", func(t *testing.T) {
		for _, c := range []Customer{{Name: "A"}, {Phone: "1"}, {Name: "  ", Phone: "1"}} {
			m := newMap(t)
			s := sessionWith(t, trip, m, 25)
			s.Customer = c

			_, err := a.Commit(trip, s, m, "")
			assert.ErrorIs(t, err, ErrIncompleteCustomerDetails)
			assert.Zero(t, m.OccupiedCount())
		}
	})

	t.Run("seat taken since selection", func(t *testing.T) {
		m := newMap(t)
		s := sessionWith(t, trip, m, 25, 26, 27)
		m.occupy([]int{27}, GenderMale)
		before := m.Seats()

		_, err := a.Commit(trip, s, m, "")
		assert.ErrorIs(t, err, ErrSeatNoLongerAvailable)
		assert.Equal(t, KindContention, KindOf(err))

		var seatErr *SeatError
		require.ErrorAs(t, err, &seatErr)
		assert.Equal(t, 27, seatErr.Seat)
		assert.Equal(t, before, m.Seats())
	})

	t.Run("pairing rule re-checked against current occupancy", func(t *testing.T) {
		m := newMap(t)
		occupyUntil(t, m, 27, 3, 4)
		s := sessionWith(t, trip, m, 3)
		require.Equal(t, []int{3}, s.Pending())

		// occupancy drops under the threshold before commit
		m.release([]int{36, 35, 34})
		require.True(t, DefaultPolicy().RequiresPairedBooking(m))
		before := m.Seats()

		_, err := a.Commit(trip, s, m, "")
		assert.ErrorIs(t, err, ErrPairingRuleViolation)
		assert.Equal(t, before, m.Seats())
	})

	t.Run("pair partner taken after independent selection", func(t *testing.T) {
		m := newMap(t)
		occupyUntil(t, m, 27, 3, 4)
		s := sessionWith(t, trip, m, 3)

		m.occupy([]int{4}, GenderMale)
		m.release([]int{36, 35, 34, 33})
		require.True(t, DefaultPolicy().RequiresPairedBooking(m))

		_, err := a.Commit(trip, s, m, "")
		assert.ErrorIs(t, err, ErrPairingRuleViolation)
	})
}

func TestValidateDoesNotMutate(t *testing.T) {
	a := newAllocator()
	trip := testTrip()
	m := newMap(t)
	s := sessionWith(t, trip, m, 25, 1)

	seats, err := a.Validate(s, m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 25}, seats)
	assert.Zero(t, m.OccupiedCount())

	b, err := a.Prepare(trip, s, m, "")
	require.NoError(t, err)
	assert.Equal(t, 45*3+5.50, b.Amount)
	assert.Zero(t, m.OccupiedCount())
}
