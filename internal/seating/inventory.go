package seating

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Loader fetches a trip and its persisted occupancy.
type Loader func(ctx context.Context, tripID uuid.UUID) (Trip, []Occupant, error)

// PersistBooking durably records a booking. It runs inside the trip's
// critical section, before the in-memory map is changed.
type PersistBooking func(ctx context.Context, b *Booking) error

// PersistRelease durably frees seats, under the same rules as PersistBooking.
type PersistRelease func(ctx context.Context) error

type tripEntry struct {
	mu    sync.Mutex
	trip  Trip
	seats *SeatMap
}

// Inventory owns the live seat map of every trip it has served, keyed by
// trip ID. All reads and writes of a trip's map happen under that trip's
// lock, so commits on one trip are serialised while different trips proceed
// independently.
type Inventory struct {
	load  Loader
	alloc *Allocator
	log   *zap.Logger

	mu    sync.Mutex
	trips map[uuid.UUID]*tripEntry
}

func NewInventory(load Loader, alloc *Allocator, log *zap.Logger) *Inventory {
	return &Inventory{
		load:  load,
		alloc: alloc,
		log:   log.With(zap.String("component", "inventory")),
		trips: make(map[uuid.UUID]*tripEntry),
	}
}

func (inv *Inventory) Allocator() *Allocator {
	return inv.alloc
}

func (inv *Inventory) entry(tripID uuid.UUID) *tripEntry {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	e, ok := inv.trips[tripID]
	if !ok {
		e = &tripEntry{}
		inv.trips[tripID] = e
	}
	return e
}

// lock returns the trip entry locked and loaded. The caller unlocks.
// Entries are never removed, so every caller for a trip contends on the
// same mutex.
func (inv *Inventory) lock(ctx context.Context, tripID uuid.UUID) (*tripEntry, error) {
	e := inv.entry(tripID)
	e.mu.Lock()

	if e.seats != nil {
		return e, nil
	}

	trip, occupants, err := inv.load(ctx, tripID)
	if err != nil {
		e.mu.Unlock()
		return nil, err
	}

	seats, err := Restore(trip.TotalSeats, occupants)
	if err != nil {
		e.mu.Unlock()
		inv.log.Error("Failed to build seat map",
			zap.String("trip_id", tripID.String()),
			zap.Int("total_seats", trip.TotalSeats),
			zap.Int("occupants", len(occupants)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("build seat map for trip %s: %w", tripID, err)
	}

	e.trip = trip
	e.seats = seats
	inv.log.Debug("Seat map loaded",
		zap.String("trip_id", tripID.String()),
		zap.Int("total_seats", seats.TotalSeats()),
		zap.Int("occupied", seats.OccupiedCount()),
	)
	return e, nil
}

// Snapshot returns the trip and a copy of its current seat map.
func (inv *Inventory) Snapshot(ctx context.Context, tripID uuid.UUID) (Trip, *SeatMap, error) {
	e, err := inv.lock(ctx, tripID)
	if err != nil {
		return Trip{}, nil, err
	}
	defer e.mu.Unlock()

	return e.trip, e.seats.Clone(), nil
}

// View runs fn with the live seat map while holding the trip lock.
// fn must not keep or modify the map.
func (inv *Inventory) View(ctx context.Context, tripID uuid.UUID, fn func(Trip, *SeatMap) error) error {
	e, err := inv.lock(ctx, tripID)
	if err != nil {
		return err
	}
	defer e.mu.Unlock()

	return fn(e.trip, e.seats)
}

// Commit converts s into a booking. Validation, persistence and the map
// update all happen under the trip lock: either every seat is claimed and
// persisted, or nothing changes and a typed error is returned.
func (inv *Inventory) Commit(ctx context.Context, s *Session, agentID string, persist PersistBooking) (*Booking, error) {
	e, err := inv.lock(ctx, s.TripID)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()

	b, err := inv.alloc.Prepare(e.trip, s, e.seats, agentID)
	if err != nil {
		return nil, err
	}

	if persist != nil {
		if err := persist(ctx, b); err != nil {
			if errors.Is(err, ErrSeatNoLongerAvailable) {
				// another writer got there first; reload on next access
				e.seats = nil
			}
			return nil, err
		}
	}

	e.seats.occupy(b.SeatNumbers, b.Customer.Gender)
	return b, nil
}

// Release frees exactly the given seats of a trip once persist succeeds.
func (inv *Inventory) Release(ctx context.Context, tripID uuid.UUID, seats []int, persist PersistRelease) error {
	e, err := inv.lock(ctx, tripID)
	if err != nil {
		return err
	}
	defer e.mu.Unlock()

	if persist != nil {
		if err := persist(ctx); err != nil {
			return err
		}
	}

	e.seats.release(seats)
	return nil
}

// Invalidate drops the cached map of a trip; the next access reloads it.
func (inv *Inventory) Invalidate(tripID uuid.UUID) {
	e := inv.entry(tripID)
	e.mu.Lock()
	e.seats = nil
	e.mu.Unlock()
}
