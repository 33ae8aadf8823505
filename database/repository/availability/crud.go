package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotbook/database"
	"slotbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAvailabilityRepo) Upsert(ctx context.Context, professorID string, slots []string) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"professorId": professorID}
	update := bson.M{
		"$set": bson.M{
			"professorId":    professorID,
			"availableSlots": slots,
			"updatedAt":      time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var availability models.Availability
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&availability); err != nil {
		return nil, fmt.Errorf("failed to upsert availability for professor %s: %w", professorID, err)
	}
	return &availability, nil
}

func (r *mongoAvailabilityRepo) GetByProfessorID(ctx context.Context, professorID string) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var availability models.Availability
	err := r.coll.FindOne(ctx, bson.M{"professorId": professorID}).Decode(&availability)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch availability for professor %s: %w", professorID, err)
	}
	return &availability, nil
}
