package repository

import (
	"context"

	appointmentRepo "slotbook/database/repository/appointment"
	availabilityRepo "slotbook/database/repository/availability"
	"slotbook/database/repository/memstore"
	userRepo "slotbook/database/repository/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces.
type UserRepository = userRepo.UserRepository

type AvailabilityRepository = availabilityRepo.AvailabilityRepository

type AppointmentRepository = appointmentRepo.AppointmentRepository

// Repositories bundles the three ledgers the services depend on.
type Repositories struct {
	Users          UserRepository
	Availabilities AvailabilityRepository
	Appointments   AppointmentRepository
}

// NewMongoRepositories builds MongoDB-backed repositories on db, creating indexes.
func NewMongoRepositories(ctx context.Context, db *mongo.Database) (*Repositories, error) {
	users, err := userRepo.NewMongoUserRepo(ctx, db)
	if err != nil {
		return nil, err
	}
	availabilities, err := availabilityRepo.NewMongoAvailabilityRepo(ctx, db)
	if err != nil {
		return nil, err
	}
	appointments, err := appointmentRepo.NewMongoAppointmentRepo(ctx, db)
	if err != nil {
		return nil, err
	}
	return &Repositories{Users: users, Availabilities: availabilities, Appointments: appointments}, nil
}

// NewMemoryRepositories builds repositories over a fresh in-memory store.
func NewMemoryRepositories() *Repositories {
	store := memstore.New()
	return &Repositories{
		Users:          store.Users(),
		Availabilities: store.Availabilities(),
		Appointments:   store.Appointments(),
	}
}

var (
	_ UserRepository         = (*memstore.UserRepo)(nil)
	_ AvailabilityRepository = (*memstore.AvailabilityRepo)(nil)
	_ AppointmentRepository  = (*memstore.AppointmentRepo)(nil)
	_ UserRepository         = (*userRepo.MongoUserRepo)(nil)
)
