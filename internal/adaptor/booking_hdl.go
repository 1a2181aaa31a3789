package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bus-ticketing/internal/dto/request"
	"bus-ticketing/internal/usecase"
	"bus-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ==================== SELECTION ====================

// CreateSession handles POST /api/trips/{tripID}/sessions
func (h *BookingHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")
	if tripID == "" {
		utils.ResponseBadRequest(w, "Trip ID is required", nil)
		return
	}

	session, err := h.service.CreateSession(r.Context(), tripID)
	if err != nil {
		handleServiceError(w, h.log, err, "create session")
		return
	}

	utils.ResponseCreated(w, "success", session)
}

// GetSession handles GET /api/sessions/{sessionID}
func (h *BookingHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		handleServiceError(w, h.log, err, "get session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// ToggleSeat handles POST /api/sessions/{sessionID}/seats/{seatNumber}
func (h *BookingHandler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	seatNumber, err := strconv.Atoi(chi.URLParam(r, "seatNumber"))
	if err != nil {
		utils.ResponseBadRequest(w, "Seat number must be an integer", nil)
		return
	}

	session, err := h.service.ToggleSeat(r.Context(), chi.URLParam(r, "sessionID"), seatNumber)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle seat")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// CancelSession handles DELETE /api/sessions/{sessionID}
func (h *BookingHandler) CancelSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CancelSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		handleServiceError(w, h.log, err, "cancel session")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== COMMIT ====================

// CommitBooking handles POST /api/sessions/{sessionID}/commit
func (h *BookingHandler) CommitBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CommitBookingRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.log.Warn("Commit booking body rejected", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	agentID, _ := utils.GetAgentIDFromContext(r.Context())

	booking, err := h.service.CommitBooking(r.Context(), chi.URLParam(r, "sessionID"), agentID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "commit booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// ==================== BOOKINGS ====================

// GetBookingByID handles GET /api/bookings/{bookingID}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetBookingByID(r.Context(), chi.URLParam(r, "bookingID"))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetTripBookings handles GET /api/trips/{tripID}/bookings
func (h *BookingHandler) GetTripBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	bookings, err := h.service.GetTripBookings(r.Context(), chi.URLParam(r, "tripID"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get trip bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CancelBooking handles PUT /api/admin/bookings/{bookingID}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CancelBooking(r.Context(), chi.URLParam(r, "bookingID")); err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetAgentCommission handles GET /api/agents/{agentID}/commission
func (h *BookingHandler) GetAgentCommission(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetAgentCommission(r.Context(), chi.URLParam(r, "agentID"))
	if err != nil {
		handleServiceError(w, h.log, err, "get agent commission")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}
