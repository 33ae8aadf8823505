package appointmentRepo

import (
	"context"

	"slotbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	// DeleteByProfessorAndStudent removes one appointment matching both IDs and
	// returns it, or database.ErrNotFound.
	DeleteByProfessorAndStudent(ctx context.Context, professorID, studentID string) (*models.Appointment, error)
	ListByStudentAndStatus(ctx context.Context, studentID, status string) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns a new AppointmentRepository instance using MongoDB.
func NewMongoAppointmentRepo(ctx context.Context, db *mongo.Database) (AppointmentRepository, error) {
	repo := &mongoAppointmentRepo{coll: db.Collection("appointments")}
	if err := repo.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}
