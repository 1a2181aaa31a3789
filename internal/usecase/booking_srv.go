package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bus-ticketing/internal/data/entity"
	"bus-ticketing/internal/data/repository"
	"bus-ticketing/internal/dto/request"
	"bus-ticketing/internal/dto/response"
	"bus-ticketing/internal/seating"
	"bus-ticketing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Selection
	CreateSession(ctx context.Context, tripID string) (*response.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*response.SessionResponse, error)
	ToggleSeat(ctx context.Context, sessionID string, seatNumber int) (*response.SessionResponse, error)
	CancelSession(ctx context.Context, sessionID string) error

	// Commit
	CommitBooking(ctx context.Context, sessionID, agentID string, req *request.CommitBookingRequest) (*response.BookingResponse, error)

	// Bookings
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetTripBookings(ctx context.Context, tripID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, bookingID string) error
	GetAgentCommission(ctx context.Context, agentID string) (*response.CommissionSummaryResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	inventory *seating.Inventory
	sessions  *SessionStore
	log       *zap.Logger
	now       func() time.Time
}

func NewBookingService(repo *repository.Repository, inventory *seating.Inventory, sessions *SessionStore, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		inventory: inventory,
		sessions:  sessions,
		log:       log.With(zap.String("service", "booking")),
		now:       time.Now,
	}
}

func parseID(kind, raw string) (uuid.UUID, error) {
	id, err := utils.ParseUUID(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s ID %q: %w", kind, raw, ErrInvalidInput)
	}
	return id, nil
}

func (s *bookingService) sessionResponse(sel *seating.Session, trip seating.Trip, m *seating.SeatMap) *response.SessionResponse {
	alloc := s.inventory.Allocator()
	pending := sel.Pending()

	estimate := 0.0
	if len(pending) > 0 {
		estimate = alloc.Fare.Price(trip.BaseFare, len(pending))
	}

	return &response.SessionResponse{
		ID:                    sel.ID.String(),
		TripID:                sel.TripID.String(),
		PendingSeats:          pending,
		EstimatedTotal:        estimate,
		RequiresPairedBooking: alloc.Policy.RequiresPairedBooking(m),
		CreatedAt:             sel.CreatedAt,
	}
}

func (s *bookingService) CreateSession(ctx context.Context, tripID string) (*response.SessionResponse, error) {
	id, err := parseID("trip", tripID)
	if err != nil {
		return nil, err
	}

	var resp *response.SessionResponse
	err = s.inventory.View(ctx, id, func(trip seating.Trip, m *seating.SeatMap) error {
		sel := s.sessions.Create(trip.ID)
		resp = s.sessionResponse(sel, trip, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create session for trip %s: %w", tripID, err)
	}

	s.log.Info("Selection session created",
		zap.String("session_id", resp.ID),
		zap.String("trip_id", tripID),
	)
	return resp, nil
}

func (s *bookingService) GetSession(ctx context.Context, sessionID string) (*response.SessionResponse, error) {
	id, err := parseID("session", sessionID)
	if err != nil {
		return nil, err
	}

	sel, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	var resp *response.SessionResponse
	err = s.inventory.View(ctx, sel.TripID, func(trip seating.Trip, m *seating.SeatMap) error {
		resp = s.sessionResponse(sel, trip, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", sessionID, err)
	}
	return resp, nil
}

// ToggleSeat runs the toggle against the live map while holding the trip
// lock, so the pairing decision sees a consistent occupancy.
func (s *bookingService) ToggleSeat(ctx context.Context, sessionID string, seatNumber int) (*response.SessionResponse, error) {
	id, err := parseID("session", sessionID)
	if err != nil {
		return nil, err
	}

	sel, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	var resp *response.SessionResponse
	err = s.inventory.View(ctx, sel.TripID, func(trip seating.Trip, m *seating.SeatMap) error {
		policy := s.inventory.Allocator().Policy
		updated, err := s.sessions.Update(id, func(sel *seating.Session) error {
			return sel.Toggle(m, policy, seatNumber)
		})
		if err != nil {
			return err
		}
		resp = s.sessionResponse(updated, trip, m)
		return nil
	})
	if err != nil {
		s.log.Warn("Toggle seat rejected",
			zap.String("session_id", sessionID),
			zap.Int("seat", seatNumber),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Debug("Seat toggled",
		zap.String("session_id", sessionID),
		zap.Int("seat", seatNumber),
		zap.Ints("pending", resp.PendingSeats),
	)
	return resp, nil
}

func (s *bookingService) CancelSession(ctx context.Context, sessionID string) error {
	id, err := parseID("session", sessionID)
	if err != nil {
		return err
	}

	if !s.sessions.Delete(id) {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}

	s.log.Info("Selection session cancelled", zap.String("session_id", sessionID))
	return nil
}

func customerFromRequest(req *request.CommitBookingRequest) seating.Customer {
	return seating.Customer{
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Age:    req.Age,
		Gender: seating.Gender(req.Gender),
	}
}

func (s *bookingService) CommitBooking(ctx context.Context, sessionID, agentID string, req *request.CommitBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Commit booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), ErrInvalidInput)
	}

	id, err := parseID("session", sessionID)
	if err != nil {
		return nil, err
	}

	sel, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	sel.Customer = customerFromRequest(req)

	var record *entity.Booking
	booking, err := s.inventory.Commit(ctx, sel, agentID, func(ctx context.Context, b *seating.Booking) error {
		record = s.bookingRecord(b)
		return s.persistBooking(ctx, b, record)
	})
	if err != nil {
		s.logCommitFailure(err, sessionID, sel)
		return nil, err
	}

	s.sessions.Delete(id)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", record.OrderID),
		zap.String("trip_id", booking.TripID.String()),
		zap.String("agent_id", agentID),
		zap.Ints("seats", booking.SeatNumbers),
		zap.Float64("total_price", booking.Amount),
		zap.Float64("commission", booking.Commission),
	)

	resp := response.BookingToResponse(record, booking.SeatNumbers)
	return &resp, nil
}

func (s *bookingService) logCommitFailure(err error, sessionID string, sel *seating.Session) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("session_id", sessionID),
		zap.String("trip_id", sel.TripID.String()),
		zap.Ints("seats", sel.Pending()),
		zap.String("kind", seating.KindOf(err).String()),
	}

	switch seating.KindOf(err) {
	case seating.KindValidation, seating.KindContention, seating.KindNotFound:
		s.log.Warn("Commit booking rejected", fields...)
	default:
		s.log.Error("Commit booking failed", fields...)
	}
}

func (s *bookingService) bookingRecord(b *seating.Booking) *entity.Booking {
	var agent *string
	if b.AgentID != "" {
		agent = &b.AgentID
	}

	return &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        b.ID,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.CreatedAt,
		},
		OrderID:        utils.GenerateOrderID(b.CreatedAt, b.ID),
		TripID:         b.TripID,
		AgentID:        agent,
		CustomerName:   b.Customer.Name,
		CustomerPhone:  b.Customer.Phone,
		CustomerEmail:  utils.StringPtr(b.Customer.Email),
		CustomerAge:    utils.IntPtr(b.Customer.Age),
		CustomerGender: utils.StringPtr(string(b.Customer.Gender)),
		TotalSeats:     len(b.SeatNumbers),
		TotalPrice:     b.Amount,
		Status:         entity.BookingStatusConfirmed,
	}
}

// persistBooking writes one booking in a single transaction: lock the trip,
// claim exactly the free seats, move the counter, then record the booking,
// its seats and the agent commission.
func (s *bookingService) persistBooking(ctx context.Context, b *seating.Booking, record *entity.Booking) error {
	return s.repo.Transact(ctx, func(tx *repository.Repository) error {
		trip, err := tx.Trip.LockByID(ctx, b.TripID)
		if err != nil {
			return err
		}
		if trip == nil {
			return fmt.Errorf("trip %s: %w", b.TripID, seating.ErrTripNotFound)
		}

		claimed, err := tx.TripSeat.Claim(ctx, b.TripID, b.SeatNumbers, record.CustomerGender)
		if err != nil {
			return err
		}
		if claimed != int64(len(b.SeatNumbers)) {
			return fmt.Errorf("claimed %d of %d seats: %w",
				claimed, len(b.SeatNumbers), seating.ErrSeatNoLongerAvailable)
		}

		if err := tx.Trip.AdjustAvailableSeats(ctx, b.TripID, -len(b.SeatNumbers)); err != nil {
			return err
		}

		if err := tx.Booking.Create(ctx, record); err != nil {
			return err
		}

		seats := make([]*entity.BookingSeat, len(b.SeatNumbers))
		for i, n := range b.SeatNumbers {
			seats[i] = &entity.BookingSeat{
				BaseSimple: entity.BaseSimple{ID: utils.GenerateUUID(), CreatedAt: b.CreatedAt},
				BookingID:  b.ID,
				TripID:     b.TripID,
				SeatNumber: n,
				Position:   i,
			}
		}
		if err := tx.BookingSeat.CreateBatch(ctx, seats); err != nil {
			return err
		}

		if b.AgentID == "" || b.Commission == 0 {
			return nil
		}
		return tx.Commission.Create(ctx, &entity.CommissionEntry{
			BaseSimple: entity.BaseSimple{ID: utils.GenerateUUID(), CreatedAt: b.CreatedAt},
			AgentID:    b.AgentID,
			BookingID:  b.ID,
			Amount:     b.Commission,
		})
	})
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}

	seats, err := s.repo.BookingSeat.FindSeatNumbers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get seats of booking %s: %w", bookingID, err)
	}

	resp := response.BookingToResponse(booking, seats)
	return &resp, nil
}

func (s *bookingService) GetTripBookings(ctx context.Context, tripID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	id, err := parseID("trip", tripID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByTripID(ctx, id, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get trip bookings",
			zap.Error(err),
			zap.String("trip_id", tripID),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get trip bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByTripID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count trip bookings: %w", err)
	}

	data := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		seats, err := s.repo.BookingSeat.FindSeatNumbers(ctx, b.ID)
		if err != nil {
			return nil, fmt.Errorf("get seats of booking %s: %w", b.ID, err)
		}
		data[i] = response.BookingToResponse(b, seats)
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

// CancelBooking flips a confirmed booking to cancelled and frees exactly
// the seats recorded on it. Any agent commission is reversed.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}
	if booking.Status != entity.BookingStatusConfirmed {
		return fmt.Errorf("booking %s is %s, cannot cancel: %w", bookingID, booking.Status, ErrInvalidState)
	}

	seats, err := s.repo.BookingSeat.FindSeatNumbers(ctx, id)
	if err != nil {
		return fmt.Errorf("get seats of booking %s: %w", bookingID, err)
	}

	err = s.inventory.Release(ctx, booking.TripID, seats, func(ctx context.Context) error {
		return s.repo.Transact(ctx, func(tx *repository.Repository) error {
			if _, err := tx.Trip.LockByID(ctx, booking.TripID); err != nil {
				return err
			}

			err := tx.Booking.UpdateStatus(ctx, id, entity.BookingStatusConfirmed, entity.BookingStatusCancelled)
			if errors.Is(err, repository.ErrStatusChanged) {
				return fmt.Errorf("%v: %w", err, ErrInvalidState)
			}
			if err != nil {
				return err
			}

			released, err := tx.TripSeat.Release(ctx, booking.TripID, seats)
			if err != nil {
				return err
			}
			if released != int64(len(seats)) {
				s.log.Warn("Cancelled booking held fewer seats than recorded",
					zap.String("booking_id", bookingID),
					zap.Int("recorded", len(seats)),
					zap.Int64("released", released),
				)
			}
			if released > 0 {
				if err := tx.Trip.AdjustAvailableSeats(ctx, booking.TripID, int(released)); err != nil {
					return err
				}
			}

			if booking.AgentID == nil {
				return nil
			}
			owed, err := tx.Commission.SumByBooking(ctx, id)
			if err != nil || owed == 0 {
				return err
			}
			return tx.Commission.Create(ctx, &entity.CommissionEntry{
				BaseSimple: entity.BaseSimple{ID: utils.GenerateUUID(), CreatedAt: s.now()},
				AgentID:    *booking.AgentID,
				BookingID:  id,
				Amount:     -owed,
			})
		})
	})
	if err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("trip_id", booking.TripID.String()),
		zap.Ints("seats", seats),
	)
	return nil
}

func (s *bookingService) GetAgentCommission(ctx context.Context, agentID string) (*response.CommissionSummaryResponse, error) {
	if agentID == "" {
		return nil, fmt.Errorf("agent ID is required: %w", ErrInvalidInput)
	}

	balance, entries, err := s.repo.Commission.SumByAgent(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("get commission of agent %s: %w", agentID, err)
	}

	return &response.CommissionSummaryResponse{
		AgentID: agentID,
		Balance: seating.RoundAmount(balance),
		Entries: entries,
	}, nil
}
