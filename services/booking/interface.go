package booking

import (
	"context"

	appointmentRepo "slotbook/database/repository/appointment"
	availabilityRepo "slotbook/database/repository/availability"
	"slotbook/models"

	"go.uber.org/zap"
)

// ProfessorActions are the operations available to an authenticated professor.
type ProfessorActions interface {
	SetAvailability(ctx context.Context, professorID string, slots []string) (*models.Availability, error)
	CancelAppointment(ctx context.Context, professorID, studentID string) (string, error)
	GetAvailability(ctx context.Context, professorID string) ([]string, error)
}

// StudentActions are the operations available to an authenticated student.
type StudentActions interface {
	GetAvailability(ctx context.Context, professorID string) ([]string, error)
	ReserveSlot(ctx context.Context, studentID, professorID, slot string) (*models.AppointmentConfirmation, error)
	ListPendingAppointments(ctx context.Context, studentID string) ([]models.Appointment, error)
}

// Notifier publishes appointment events. Failures never affect the booking outcome.
type Notifier interface {
	Notify(ctx context.Context, event models.AppointmentEvent) error
}

// DefaultBookingEngine implements both ProfessorActions and StudentActions.
type DefaultBookingEngine struct {
	Availability availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
	Notifier     Notifier
	Logger       *zap.Logger
}

func NewBookingEngine(
	availability availabilityRepo.AvailabilityRepository,
	appointments appointmentRepo.AppointmentRepository,
	notifier Notifier,
	logger *zap.Logger,
) *DefaultBookingEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingEngine{
		Availability: availability,
		Appointments: appointments,
		Notifier:     notifier,
		Logger:       logger,
	}
}

var (
	_ ProfessorActions = (*DefaultBookingEngine)(nil)
	_ StudentActions   = (*DefaultBookingEngine)(nil)
)

func (e *DefaultBookingEngine) notify(ctx context.Context, event models.AppointmentEvent) {
	if e.Notifier == nil {
		return
	}
	if err := e.Notifier.Notify(ctx, event); err != nil {
		e.Logger.Warn("failed to publish appointment event",
			zap.String("event", event.Event),
			zap.String("studentId", event.StudentID),
			zap.String("professorId", event.ProfessorID),
			zap.Error(err))
	}
}
