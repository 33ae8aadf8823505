package availabilityRepo

import (
	"context"

	"slotbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AvailabilityRepository interface {
	// Upsert replaces the professor's slot list wholesale, creating the record if absent.
	Upsert(ctx context.Context, professorID string, slots []string) (*models.Availability, error)
	// GetByProfessorID returns database.ErrNotFound when the professor never published slots.
	GetByProfessorID(ctx context.Context, professorID string) (*models.Availability, error)
	// RemoveSlot atomically removes the first occurrence of slot if it is still
	// present. It returns database.ErrSlotTaken when nothing matched.
	RemoveSlot(ctx context.Context, professorID, slot string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo(ctx context.Context, db *mongo.Database) (AvailabilityRepository, error) {
	repo := &mongoAvailabilityRepo{coll: db.Collection("availabilities")}
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}
