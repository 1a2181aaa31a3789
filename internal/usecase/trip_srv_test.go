package usecase

import (
	"context"
	"testing"

	"bus-ticketing/internal/seating"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSeatMap(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	trip := db.addTrip(36, 45)
	db.occupy(trip.ID, 1, 2, 25)

	m, err := svc.Trip.GetSeatMap(ctx, trip.ID.String())
	require.NoError(t, err)

	assert.Equal(t, trip.ID.String(), m.TripID)
	assert.Equal(t, 36, m.TotalSeats)
	assert.Equal(t, 3, m.OccupiedCount)
	assert.Equal(t, 33, m.AvailableCount)
	assert.Equal(t, 45.0, m.BaseFare)
	assert.True(t, m.RequiresPairedBooking)
	require.Len(t, m.Sections, 2)
	assert.Len(t, m.Sections[0].Rows, 6)
}

func TestGetSeatMapErrors(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Trip.GetSeatMap(ctx, "abc")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Trip.GetSeatMap(ctx, uuid.NewString())
	assert.ErrorIs(t, err, seating.ErrTripNotFound)

	odd := db.addTrip(35, 10)
	_, err = svc.Trip.GetSeatMap(ctx, odd.ID.String())
	assert.ErrorIs(t, err, seating.ErrConfiguration)
}

func TestTripLoaderRejectsTripWithoutSeats(t *testing.T) {
	svc, db := newTestService(t)
	trip := db.addTrip(0, 20)

	_, err := svc.Trip.GetSeatMap(context.Background(), trip.ID.String())
	assert.ErrorIs(t, err, seating.ErrConfiguration)
	assert.Equal(t, seating.KindConfiguration, seating.KindOf(err))

	_, err = svc.Booking.CreateSession(context.Background(), trip.ID.String())
	assert.ErrorIs(t, err, seating.ErrConfiguration)
}
