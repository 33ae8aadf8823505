package notification

import (
	"context"
	"errors"
	"fmt"

	"slotbook/database"
	userRepo "slotbook/database/repository/user"
	"slotbook/models"

	"go.uber.org/zap"
)

// NotificationService delivers appointment events to the people they concern.
type NotificationService interface {
	Deliver(ctx context.Context, event models.AppointmentEvent) error
}

// DefaultNotificationService writes one structured log line per recipient.
// Delivery channels such as email are not wired in.
type DefaultNotificationService struct {
	Users  userRepo.UserRepository
	Logger *zap.Logger
}

func NewDefaultNotificationService(users userRepo.UserRepository, logger *zap.Logger) (*DefaultNotificationService, error) {
	if users == nil || logger == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository or logger is nil")
	}
	return &DefaultNotificationService{Users: users, Logger: logger}, nil
}

// Deliver resolves both recipients and notifies each one that exists. Missing
// recipients are skipped; store failures are returned so the task is retried.
func (s *DefaultNotificationService) Deliver(ctx context.Context, event models.AppointmentEvent) error {
	recipients := []struct {
		id, role string
	}{
		{event.StudentID, models.RoleStudent},
		{event.ProfessorID, models.RoleProfessor},
	}

	delivered := 0
	for _, r := range recipients {
		if r.id == "" {
			continue
		}
		if _, err := s.Users.GetByUserIDAndRole(ctx, r.id, r.role); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				s.Logger.Warn("notification recipient not found", zap.String("userId", r.id), zap.String("role", r.role))
				continue
			}
			return fmt.Errorf("failed to resolve recipient %s: %w", r.id, err)
		}
		s.Logger.Info("appointment notification",
			zap.String("event", event.Event),
			zap.String("recipient", r.id),
			zap.String("role", r.role),
			zap.String("message", Message(event)))
		delivered++
	}
	if delivered == 0 {
		s.Logger.Warn("appointment notification had no recipients", zap.String("event", event.Event))
	}
	return nil
}

// Message renders the human-readable text for an event.
func Message(event models.AppointmentEvent) string {
	switch event.Event {
	case models.EventAppointmentBooked:
		return fmt.Sprintf("Student %s booked Professor %s at %s.", event.StudentID, event.ProfessorID, event.TimeSlot)
	case models.EventAppointmentCancelled:
		return fmt.Sprintf("Professor %s cancelled the appointment with Student %s at %s.", event.ProfessorID, event.StudentID, event.TimeSlot)
	default:
		return event.Event
	}
}
