package usecase

import (
	"context"
	"fmt"

	"bus-ticketing/internal/data/repository"
	"bus-ticketing/internal/dto/response"
	"bus-ticketing/internal/seating"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TripService interface {
	GetSeatMap(ctx context.Context, tripID string) (*response.SeatMapResponse, error)
}

type tripService struct {
	inventory *seating.Inventory
	log       *zap.Logger
}

func NewTripService(inventory *seating.Inventory, log *zap.Logger) TripService {
	return &tripService{
		inventory: inventory,
		log:       log.With(zap.String("service", "trip")),
	}
}

func (s *tripService) GetSeatMap(ctx context.Context, tripID string) (*response.SeatMapResponse, error) {
	id, err := parseID("trip", tripID)
	if err != nil {
		return nil, err
	}

	trip, seats, err := s.inventory.Snapshot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get seat map of trip %s: %w", tripID, err)
	}

	resp := response.SeatMapToResponse(trip, seats, s.inventory.Allocator().Policy)
	s.log.Debug("Seat map retrieved",
		zap.String("trip_id", tripID),
		zap.Int("occupied", resp.OccupiedCount),
		zap.Bool("paired", resp.RequiresPairedBooking),
	)
	return &resp, nil
}

// NewTripLoader builds the seat map source for the inventory: the trip row
// gives size and fare, trip_seats gives who is sitting where.
func NewTripLoader(repo *repository.Repository, log *zap.Logger) seating.Loader {
	log = log.With(zap.String("component", "trip_loader"))

	return func(ctx context.Context, tripID uuid.UUID) (seating.Trip, []seating.Occupant, error) {
		trip, err := repo.Trip.FindByID(ctx, tripID)
		if err != nil {
			return seating.Trip{}, nil, fmt.Errorf("load trip %s: %w", tripID, err)
		}
		if trip == nil {
			return seating.Trip{}, nil, fmt.Errorf("trip %s: %w", tripID, seating.ErrTripNotFound)
		}

		total := trip.TotalSeats
		if total <= 0 {
			return seating.Trip{}, nil, fmt.Errorf("trip %s has %d seats: %w", tripID, total, seating.ErrConfiguration)
		}

		if err := repo.TripSeat.EnsureSeats(ctx, trip.ID, total); err != nil {
			return seating.Trip{}, nil, err
		}

		rows, err := repo.TripSeat.FindOccupiedByTripID(ctx, trip.ID)
		if err != nil {
			return seating.Trip{}, nil, err
		}

		occupants := make([]seating.Occupant, 0, len(rows))
		for _, r := range rows {
			o := seating.Occupant{Number: r.SeatNumber}
			if r.OccupantGender != nil {
				o.Gender = seating.Gender(*r.OccupantGender)
			}
			occupants = append(occupants, o)
		}

		log.Info("Trip seat map loaded",
			zap.String("trip_id", tripID.String()),
			zap.Int("total_seats", total),
			zap.Int("occupied", len(occupants)),
		)

		return seating.Trip{ID: trip.ID, TotalSeats: total, BaseFare: trip.BaseFare}, occupants, nil
	}
}
