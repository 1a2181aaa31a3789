package repository

import (
	"context"
	"errors"
	"fmt"

	"bus-ticketing/internal/data/entity"
	"bus-ticketing/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TripRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)
	// LockByID reads the trip row FOR UPDATE; only meaningful inside Transact.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)
	AdjustAvailableSeats(ctx context.Context, id uuid.UUID, delta int) error
}

type tripRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewTripRepository(db database.Querier, log *zap.Logger) TripRepository {
	return &tripRepository{
		db:  db,
		log: log.With(zap.String("repository", "trip")),
	}
}

const tripColumns = `id, route_name, departure_at, total_seats, base_fare, available_seats, created_at, updated_at`

func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	return r.find(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, id)
}

func (r *tripRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	return r.find(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1 FOR UPDATE`, id)
}

func (r *tripRepository) find(ctx context.Context, query string, id uuid.UUID) (*entity.Trip, error) {
	var trip entity.Trip
	err := r.db.QueryRow(ctx, query, id).Scan(
		&trip.ID,
		&trip.RouteName,
		&trip.DepartureAt,
		&trip.TotalSeats,
		&trip.BaseFare,
		&trip.AvailableSeats,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find trip by ID",
			zap.Error(err),
			zap.String("trip_id", id.String()),
		)
		return nil, fmt.Errorf("find trip by ID %s: %w", id.String(), err)
	}

	return &trip, nil
}

func (r *tripRepository) AdjustAvailableSeats(ctx context.Context, id uuid.UUID, delta int) error {
	query := `
		UPDATE trips
		SET available_seats = available_seats + $2, updated_at = NOW()
		WHERE id = $1 AND available_seats + $2 BETWEEN 0 AND total_seats
	`

	result, err := r.db.Exec(ctx, query, id, delta)
	if err != nil {
		r.log.Error("Failed to adjust available seats",
			zap.Error(err),
			zap.String("trip_id", id.String()),
			zap.Int("delta", delta),
		)
		return fmt.Errorf("adjust available seats of trip %s by %d: %w", id.String(), delta, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trip %s not found or seat counter out of range", id.String())
	}

	return nil
}
