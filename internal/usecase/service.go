package usecase

import (
	"bus-ticketing/internal/data/repository"
	"bus-ticketing/internal/seating"
	"bus-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Trip    TripService
	Booking BookingService

	Inventory *seating.Inventory
	Sessions  *SessionStore
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	alloc := seating.NewAllocator(
		seating.Policy{PairThreshold: config.Booking.PairThreshold},
		seating.Fare{ServiceFee: config.Booking.ServiceFee, Tax: config.Booking.Tax},
		config.Booking.CommissionRate,
	)

	inventory := seating.NewInventory(NewTripLoader(repo, log), alloc, log)
	sessions := NewSessionStore(config.Booking.SessionTTL)

	return &Service{
		Trip:      NewTripService(inventory, log),
		Booking:   NewBookingService(repo, inventory, sessions, log),
		Inventory: inventory,
		Sessions:  sessions,
	}
}
