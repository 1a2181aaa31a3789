package repository

import (
	"context"
	"fmt"

	"bus-ticketing/internal/data/entity"
	"bus-ticketing/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommissionRepository interface {
	Create(ctx context.Context, entry *entity.CommissionEntry) error
	// SumByAgent returns the agent's balance and the number of ledger lines.
	SumByAgent(ctx context.Context, agentID string) (float64, int64, error)
	// SumByBooking returns the net commission posted for a booking.
	SumByBooking(ctx context.Context, bookingID uuid.UUID) (float64, error)
}

type commissionRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewCommissionRepository(db database.Querier, log *zap.Logger) CommissionRepository {
	return &commissionRepository{
		db:  db,
		log: log.With(zap.String("repository", "commission")),
	}
}

func (r *commissionRepository) Create(ctx context.Context, entry *entity.CommissionEntry) error {
	query := `
		INSERT INTO commissions (id, agent_id, booking_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, entry.ID, entry.AgentID, entry.BookingID, entry.Amount, entry.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create commission entry",
			zap.Error(err),
			zap.String("agent_id", entry.AgentID),
			zap.String("booking_id", entry.BookingID.String()),
		)
		return fmt.Errorf("create commission for agent %s: %w", entry.AgentID, err)
	}

	return nil
}

func (r *commissionRepository) SumByAgent(ctx context.Context, agentID string) (float64, int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0)::float8, COUNT(*) FROM commissions WHERE agent_id = $1`

	var (
		total float64
		count int64
	)
	if err := r.db.QueryRow(ctx, query, agentID).Scan(&total, &count); err != nil {
		r.log.Error("Failed to sum agent commission",
			zap.Error(err),
			zap.String("agent_id", agentID),
		)
		return 0, 0, fmt.Errorf("sum commission of agent %s: %w", agentID, err)
	}

	return total, count, nil
}

func (r *commissionRepository) SumByBooking(ctx context.Context, bookingID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0)::float8 FROM commissions WHERE booking_id = $1`

	var total float64
	if err := r.db.QueryRow(ctx, query, bookingID).Scan(&total); err != nil {
		r.log.Error("Failed to sum booking commission",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return 0, fmt.Errorf("sum commission of booking %s: %w", bookingID.String(), err)
	}

	return total, nil
}
