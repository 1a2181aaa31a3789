package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"bus-ticketing/internal/data/entity"
	"bus-ticketing/internal/data/repository"

	"github.com/google/uuid"
)

// memDB backs every repository interface with maps so services can be
// exercised without Postgres. A Repository built from it has no database,
// so Transact runs inline.
type memDB struct {
	mu          sync.Mutex
	trips       map[uuid.UUID]*entity.Trip
	seats       map[uuid.UUID]map[int]*string // occupied seats -> gender
	bookings    map[uuid.UUID]*entity.Booking
	bookingSeat map[uuid.UUID][]int
	commissions []*entity.CommissionEntry
}

func newMemDB() *memDB {
	return &memDB{
		trips:       make(map[uuid.UUID]*entity.Trip),
		seats:       make(map[uuid.UUID]map[int]*string),
		bookings:    make(map[uuid.UUID]*entity.Booking),
		bookingSeat: make(map[uuid.UUID][]int),
	}
}

func (db *memDB) repository() *repository.Repository {
	return &repository.Repository{
		Trip:        memTrips{db},
		TripSeat:    memTripSeats{db},
		Booking:     memBookings{db},
		BookingSeat: memBookingSeats{db},
		Commission:  memCommissions{db},
	}
}

func (db *memDB) addTrip(total int, fare float64) *entity.Trip {
	db.mu.Lock()
	defer db.mu.Unlock()

	t := &entity.Trip{
		BaseNoDelete:   entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now()},
		RouteName:      "Jakarta - Bandung",
		DepartureAt:    time.Now().Add(24 * time.Hour),
		TotalSeats:     total,
		BaseFare:       fare,
		AvailableSeats: total,
	}
	db.trips[t.ID] = t
	db.seats[t.ID] = make(map[int]*string)
	return t
}

func (db *memDB) occupy(tripID uuid.UUID, seats ...int) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, n := range seats {
		db.seats[tripID][n] = nil
		db.trips[tripID].AvailableSeats--
	}
}

func (db *memDB) isOccupied(tripID uuid.UUID, n int) bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	_, ok := db.seats[tripID][n]
	return ok
}

func (db *memDB) trip(id uuid.UUID) entity.Trip {
	db.mu.Lock()
	defer db.mu.Unlock()
	return *db.trips[id]
}

func (db *memDB) bookingCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.bookings)
}

type memTrips struct{ db *memDB }

func (r memTrips) FindByID(_ context.Context, id uuid.UUID) (*entity.Trip, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t, ok := r.db.trips[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r memTrips) LockByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	return r.FindByID(ctx, id)
}

func (r memTrips) AdjustAvailableSeats(_ context.Context, id uuid.UUID, delta int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.trips[id].AvailableSeats += delta
	return nil
}

type memTripSeats struct{ db *memDB }

func (r memTripSeats) EnsureSeats(_ context.Context, tripID uuid.UUID, _ int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.seats[tripID] == nil {
		r.db.seats[tripID] = make(map[int]*string)
	}
	return nil
}

func (r memTripSeats) FindOccupiedByTripID(_ context.Context, tripID uuid.UUID) ([]*entity.TripSeat, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var out []*entity.TripSeat
	for n, g := range r.db.seats[tripID] {
		out = append(out, &entity.TripSeat{TripID: tripID, SeatNumber: n, Occupied: true, OccupantGender: g})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeatNumber < out[j].SeatNumber })
	return out, nil
}

// Claim behaves like the guarded UPDATE inside a transaction that is rolled
// back on a short count: rows change only when every seat is free.
func (r memTripSeats) Claim(_ context.Context, tripID uuid.UUID, seats []int, gender *string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var free int64
	for _, n := range seats {
		if _, taken := r.db.seats[tripID][n]; !taken {
			free++
		}
	}
	if free != int64(len(seats)) {
		return free, nil
	}
	for _, n := range seats {
		r.db.seats[tripID][n] = gender
	}
	return free, nil
}

func (r memTripSeats) Release(_ context.Context, tripID uuid.UUID, seats []int) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var n int64
	for _, s := range seats {
		if _, taken := r.db.seats[tripID][s]; taken {
			delete(r.db.seats[tripID], s)
			n++
		}
	}
	return n, nil
}

type memBookings struct{ db *memDB }

func (r memBookings) Create(_ context.Context, b *entity.Booking) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cp := *b
	r.db.bookings[b.ID] = &cp
	return nil
}

func (r memBookings) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b, ok := r.db.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r memBookings) byTrip(tripID uuid.UUID) []*entity.Booking {
	var out []*entity.Booking
	for _, b := range r.db.bookings {
		if b.TripID == tripID {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })
	return out
}

func (r memBookings) FindByTripID(_ context.Context, tripID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	all := r.byTrip(tripID)
	if offset >= len(all) {
		return nil, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (r memBookings) CountByTripID(_ context.Context, tripID uuid.UUID) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return int64(len(r.byTrip(tripID))), nil
}

func (r memBookings) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.BookingStatus) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b, ok := r.db.bookings[id]
	if !ok || b.Status != from {
		return repository.ErrStatusChanged
	}
	b.Status = to
	return nil
}

type memBookingSeats struct{ db *memDB }

func (r memBookingSeats) CreateBatch(_ context.Context, seats []*entity.BookingSeat) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, s := range seats {
		r.db.bookingSeat[s.BookingID] = append(r.db.bookingSeat[s.BookingID], s.SeatNumber)
	}
	return nil
}

func (r memBookingSeats) FindSeatNumbers(_ context.Context, bookingID uuid.UUID) ([]int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return append([]int(nil), r.db.bookingSeat[bookingID]...), nil
}

type memCommissions struct{ db *memDB }

func (r memCommissions) Create(_ context.Context, e *entity.CommissionEntry) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cp := *e
	r.db.commissions = append(r.db.commissions, &cp)
	return nil
}

func (r memCommissions) SumByAgent(_ context.Context, agentID string) (float64, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var sum float64
	var n int64
	for _, e := range r.db.commissions {
		if e.AgentID == agentID {
			sum += e.Amount
			n++
		}
	}
	return sum, n, nil
}

func (r memCommissions) SumByBooking(_ context.Context, bookingID uuid.UUID) (float64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var sum float64
	for _, e := range r.db.commissions {
		if e.BookingID == bookingID {
			sum += e.Amount
		}
	}
	return sum, nil
}
