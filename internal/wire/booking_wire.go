package wire

import (
	"bus-ticketing/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// ==================== SELECTION ====================
	// POST /api/trips/{tripID}/sessions - Open a selection session
	r.Post("/api/trips/{tripID}/sessions", bookingHandler.CreateSession)

	r.Route("/api/sessions/{sessionID}", func(r chi.Router) {
		r.Get("/", bookingHandler.GetSession)
		r.Delete("/", bookingHandler.CancelSession)

		// POST /api/sessions/{sessionID}/seats/{seatNumber} - Toggle a seat
		r.Post("/seats/{seatNumber}", bookingHandler.ToggleSeat)

		// POST /api/sessions/{sessionID}/commit - Turn the selection into a booking
		r.Post("/commit", bookingHandler.CommitBooking)
	})

	// ==================== BOOKINGS ====================
	// GET /api/trips/{tripID}/bookings - Bookings on a trip, paginated
	r.Get("/api/trips/{tripID}/bookings", bookingHandler.GetTripBookings)
	r.Get("/api/bookings/{bookingID}", bookingHandler.GetBookingByID)
	r.Get("/api/agents/{agentID}/commission", bookingHandler.GetAgentCommission)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		// PUT /api/admin/bookings/{bookingID}/cancel - Cancel and free the seats
		r.Put("/{bookingID}/cancel", bookingHandler.CancelBooking)
	})
}
