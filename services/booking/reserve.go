package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotbook/database"
	"slotbook/models"
	"slotbook/utils"

	"go.uber.org/zap"
)

// ReserveSlot converts one open slot into a pending appointment.
//
// The slot is removed with a single conditional update that only matches while
// the slot is still present, so at most one of several concurrent callers wins;
// the others get a conflict. The appointment is written afterwards. If that
// write fails the slot stays removed and the failure is reported as internal.
func (e *DefaultBookingEngine) ReserveSlot(ctx context.Context, studentID, professorID, slot string) (*models.AppointmentConfirmation, error) {
	availability, err := e.Availability.GetByProfessorID(ctx, professorID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NotFound("No availability found for Professor %s.", professorID)
		}
		return nil, utils.Internal(err)
	}
	if !availability.HasSlot(slot) {
		return nil, utils.NotFound("Slot %s is not available for Professor %s.", slot, professorID)
	}

	if err := e.Availability.RemoveSlot(ctx, professorID, slot); err != nil {
		if errors.Is(err, database.ErrSlotTaken) {
			return nil, utils.Conflict("Slot %s for Professor %s was just booked by someone else.", slot, professorID)
		}
		return nil, utils.Internal(err)
	}

	appointment := &models.Appointment{
		StudentID:   studentID,
		ProfessorID: professorID,
		TimeSlot:    slot,
		Status:      models.AppointmentPending,
		CreatedAt:   time.Now(),
	}
	if err := e.Appointments.Create(ctx, appointment); err != nil {
		e.Logger.Error("slot removed but appointment was not recorded",
			zap.String("studentId", studentID),
			zap.String("professorId", professorID),
			zap.String("slot", slot),
			zap.Error(err))
		return nil, utils.Internal(fmt.Errorf("slot %s removed without appointment: %w", slot, err))
	}

	e.notify(ctx, models.AppointmentEvent{
		Event:         models.EventAppointmentBooked,
		AppointmentID: appointment.AppointmentID,
		StudentID:     studentID,
		ProfessorID:   professorID,
		TimeSlot:      slot,
		OccurredAt:    appointment.CreatedAt,
	})

	return &models.AppointmentConfirmation{
		AppointmentID: appointment.AppointmentID,
		StudentID:     studentID,
		ProfessorID:   professorID,
		TimeSlot:      slot,
		Message:       fmt.Sprintf("Appointment booked successfully. Student %s with Professor %s at %s.", studentID, professorID, slot),
	}, nil
}
