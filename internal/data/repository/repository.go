package repository

import (
	"context"
	"fmt"

	"bus-ticketing/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	Trip        TripRepository
	TripSeat    TripSeatRepository
	Booking     BookingRepository
	BookingSeat BookingSeatRepository
	Commission  CommissionRepository

	db  database.PgxIface
	log *zap.Logger
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	r := bind(db, log)
	r.db = db
	return r
}

func bind(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		Trip:        NewTripRepository(q, log),
		TripSeat:    NewTripSeatRepository(q, log),
		Booking:     NewBookingRepository(q, log),
		BookingSeat: NewBookingSeatRepository(q, log),
		Commission:  NewCommissionRepository(q, log),
		log:         log,
	}
}

// Transact runs fn with repositories bound to one transaction, committing
// when fn returns nil and rolling back otherwise. A Repository without a
// database (already inside a transaction, or assembled by hand) runs fn
// directly on itself.
func (r *Repository) Transact(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		// no-op once committed
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
			r.log.Warn("Rollback failed", zap.Error(rbErr))
		}
	}()

	if err := fn(bind(tx, r.log)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
