package repository

import (
	"context"
	"fmt"

	"bus-ticketing/internal/data/entity"
	"bus-ticketing/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingSeatRepository interface {
	CreateBatch(ctx context.Context, bookingSeats []*entity.BookingSeat) error
	// FindSeatNumbers returns the seats of a booking in display order.
	FindSeatNumbers(ctx context.Context, bookingID uuid.UUID) ([]int, error)
}

type bookingSeatRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingSeatRepository(db database.Querier, log *zap.Logger) BookingSeatRepository {
	return &bookingSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_seat")),
	}
}

func (r *bookingSeatRepository) CreateBatch(ctx context.Context, bookingSeats []*entity.BookingSeat) error {
	query := `
		INSERT INTO booking_seats (id, booking_id, trip_id, seat_number, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, bs := range bookingSeats {
		_, err := r.db.Exec(ctx, query,
			bs.ID,
			bs.BookingID,
			bs.TripID,
			bs.SeatNumber,
			bs.Position,
			bs.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create booking seat",
				zap.Error(err),
				zap.String("booking_id", bs.BookingID.String()),
				zap.Int("seat_number", bs.SeatNumber),
			)
			return fmt.Errorf("create booking seat for booking %s seat %d: %w",
				bs.BookingID.String(), bs.SeatNumber, err)
		}
	}

	return nil
}

func (r *bookingSeatRepository) FindSeatNumbers(ctx context.Context, bookingID uuid.UUID) ([]int, error) {
	query := `
		SELECT seat_number
		FROM booking_seats
		WHERE booking_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking seats",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find seats of booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var seats []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			r.log.Error("Failed to scan booking seat row", zap.Error(err))
			return nil, fmt.Errorf("scan booking seat row: %w", err)
		}
		seats = append(seats, n)
	}

	return seats, rows.Err()
}
