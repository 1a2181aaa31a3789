package wire

import (
	"bus-ticketing/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTrip(r chi.Router, tripHandler *adaptor.TripHandler) {
	// GET /api/trips/{tripID}/seats - Seat map with occupancy and pairing mode
	r.Get("/api/trips/{tripID}/seats", tripHandler.GetSeatMap)
}
