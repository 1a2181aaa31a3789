package repository

import (
	"context"
	"fmt"

	"bus-ticketing/internal/data/entity"
	"bus-ticketing/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TripSeatRepository interface {
	// EnsureSeats creates the seat rows 1..total for a trip if missing.
	EnsureSeats(ctx context.Context, tripID uuid.UUID, total int) error
	FindOccupiedByTripID(ctx context.Context, tripID uuid.UUID) ([]*entity.TripSeat, error)
	// Claim marks free seats occupied and returns how many rows changed.
	Claim(ctx context.Context, tripID uuid.UUID, seats []int, gender *string) (int64, error)
	// Release frees occupied seats and returns how many rows changed.
	Release(ctx context.Context, tripID uuid.UUID, seats []int) (int64, error)
}

type tripSeatRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewTripSeatRepository(db database.Querier, log *zap.Logger) TripSeatRepository {
	return &tripSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "trip_seat")),
	}
}

func toInt32s(seats []int) []int32 {
	out := make([]int32, len(seats))
	for i, n := range seats {
		out[i] = int32(n)
	}
	return out
}

func (r *tripSeatRepository) EnsureSeats(ctx context.Context, tripID uuid.UUID, total int) error {
	query := `
		INSERT INTO trip_seats (trip_id, seat_number, occupied, updated_at)
		SELECT $1, n, FALSE, NOW() FROM generate_series(1, $2::int) AS n
		ON CONFLICT (trip_id, seat_number) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, tripID, total); err != nil {
		r.log.Error("Failed to ensure trip seats",
			zap.Error(err),
			zap.String("trip_id", tripID.String()),
			zap.Int("total", total),
		)
		return fmt.Errorf("ensure seats for trip %s: %w", tripID.String(), err)
	}

	return nil
}

func (r *tripSeatRepository) FindOccupiedByTripID(ctx context.Context, tripID uuid.UUID) ([]*entity.TripSeat, error) {
	query := `
		SELECT trip_id, seat_number, occupied, occupant_gender, updated_at
		FROM trip_seats
		WHERE trip_id = $1 AND occupied = TRUE
		ORDER BY seat_number
	`

	rows, err := r.db.Query(ctx, query, tripID)
	if err != nil {
		r.log.Error("Failed to find occupied seats",
			zap.Error(err),
			zap.String("trip_id", tripID.String()),
		)
		return nil, fmt.Errorf("find occupied seats of trip %s: %w", tripID.String(), err)
	}
	defer rows.Close()

	var seats []*entity.TripSeat
	for rows.Next() {
		var s entity.TripSeat
		if err := rows.Scan(&s.TripID, &s.SeatNumber, &s.Occupied, &s.OccupantGender, &s.UpdatedAt); err != nil {
			r.log.Error("Failed to scan trip seat row", zap.Error(err))
			return nil, fmt.Errorf("scan trip seat row: %w", err)
		}
		seats = append(seats, &s)
	}

	return seats, rows.Err()
}

func (r *tripSeatRepository) Claim(ctx context.Context, tripID uuid.UUID, seats []int, gender *string) (int64, error) {
	query := `
		UPDATE trip_seats
		SET occupied = TRUE, occupant_gender = $3, updated_at = NOW()
		WHERE trip_id = $1 AND seat_number = ANY($2) AND occupied = FALSE
	`

	result, err := r.db.Exec(ctx, query, tripID, toInt32s(seats), gender)
	if err != nil {
		r.log.Error("Failed to claim seats",
			zap.Error(err),
			zap.String("trip_id", tripID.String()),
			zap.Ints("seats", seats),
		)
		return 0, fmt.Errorf("claim seats of trip %s: %w", tripID.String(), err)
	}

	return result.RowsAffected(), nil
}

func (r *tripSeatRepository) Release(ctx context.Context, tripID uuid.UUID, seats []int) (int64, error) {
	query := `
		UPDATE trip_seats
		SET occupied = FALSE, occupant_gender = NULL, updated_at = NOW()
		WHERE trip_id = $1 AND seat_number = ANY($2) AND occupied = TRUE
	`

	result, err := r.db.Exec(ctx, query, tripID, toInt32s(seats))
	if err != nil {
		r.log.Error("Failed to release seats",
			zap.Error(err),
			zap.String("trip_id", tripID.String()),
			zap.Ints("seats", seats),
		)
		return 0, fmt.Errorf("release seats of trip %s: %w", tripID.String(), err)
	}

	return result.RowsAffected(), nil
}
