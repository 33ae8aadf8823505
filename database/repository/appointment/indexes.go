package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAppointmentRepo) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "appointmentId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_appointment_id"),
		},
		{
			Keys:    bson.D{{Key: "studentId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("student_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "professorId", Value: 1}, {Key: "studentId", Value: 1}},
			Options: options.Index().SetName("professor_student_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
