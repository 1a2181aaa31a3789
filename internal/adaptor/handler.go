package adaptor

import (
	"errors"
	"net/http"

	"bus-ticketing/internal/seating"
	"bus-ticketing/internal/usecase"
	"bus-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Trip    *TripHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Trip:    NewTripHandler(service.Trip, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// seatDetail is attached to error responses that concern one seat.
type seatDetail struct {
	Seat int    `json:"seat"`
	Kind string `json:"kind"`
}

func errorDetail(err error) any {
	var se *seating.SeatError
	if errors.As(err, &se) {
		return seatDetail{Seat: se.Seat, Kind: seating.KindOf(err).String()}
	}
	if kind := seating.KindOf(err); kind != seating.KindUnknown {
		return map[string]string{"kind": kind.String()}
	}
	return nil
}

// handleServiceError maps service errors to HTTP responses. Validation
// failures are 400 or 422, contention is 409 so the client refetches the
// seat map and retries, and anything unclassified is a 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()
	fields := []zap.Field{zap.Error(err), zap.String("operation", operation)}

	switch {
	case errors.Is(err, usecase.ErrNotFound), errors.Is(err, seating.ErrTripNotFound):
		log.Warn(operation+" failed - not found", fields...)
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn("Invalid input for "+operation, fields...)
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, usecase.ErrInvalidState):
		log.Warn(operation+" failed - invalid state", fields...)
		utils.ResponseConflict(w, errMsg, nil)

	case errors.Is(err, seating.ErrIncompleteCustomerDetails), errors.Is(err, seating.ErrEmptySelection):
		log.Warn(operation+" validation failed", fields...)
		utils.ResponseUnprocessable(w, errMsg, errorDetail(err))

	case seating.KindOf(err) == seating.KindValidation:
		log.Warn(operation+" rejected", fields...)
		utils.ResponseBadRequest(w, errMsg, errorDetail(err))

	case seating.KindOf(err) == seating.KindContention:
		log.Warn(operation+" failed - seat contention", fields...)
		utils.ResponseConflict(w, errMsg, errorDetail(err))

	default:
		log.Error("Failed to "+operation, fields...)
		utils.ResponseInternalError(w, "Internal server error")
	}
}
