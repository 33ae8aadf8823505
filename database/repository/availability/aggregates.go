package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"slotbook/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RemoveSlot matches the document only while it still contains slot, and the
// pipeline splices out exactly the first occurrence. Both happen inside one
// UpdateOne, so two concurrent callers cannot both remove the same occurrence.
func (r *mongoAvailabilityRepo) RemoveSlot(ctx context.Context, professorID, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professorId":    professorID,
		"availableSlots": slot,
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "availableSlots", Value: bson.D{{Key: "$let", Value: bson.D{
				{Key: "vars", Value: bson.D{
					{Key: "idx", Value: bson.D{{Key: "$indexOfArray", Value: bson.A{"$availableSlots", slot}}}},
				}},
				{Key: "in", Value: bson.D{{Key: "$concatArrays", Value: bson.A{
					bson.D{{Key: "$slice", Value: bson.A{"$availableSlots", "$$idx"}}},
					bson.D{{Key: "$slice", Value: bson.A{
						"$availableSlots",
						bson.D{{Key: "$add", Value: bson.A{"$$idx", 1}}},
						bson.D{{Key: "$max", Value: bson.A{1, bson.D{{Key: "$size", Value: "$availableSlots"}}}}},
					}}},
				}}}},
			}}}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	}

	res, err := r.coll.UpdateOne(ctx, filter, pipeline)
	if err != nil {
		return fmt.Errorf("failed to remove slot %s for professor %s: %w", slot, professorID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("slot %s for professor %s: %w", slot, professorID, database.ErrSlotTaken)
	}
	return nil
}
