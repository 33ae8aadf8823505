package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotbook/database"
	"slotbook/models"
	"slotbook/utils"
)

// CancelAppointment hard-deletes one appointment between the professor and the
// student. The freed slot is not returned to the professor's availability.
func (e *DefaultBookingEngine) CancelAppointment(ctx context.Context, professorID, studentID string) (string, error) {
	appointment, err := e.Appointments.DeleteByProfessorAndStudent(ctx, professorID, studentID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return "", utils.NotFound("Appointment not found.")
		}
		return "", utils.Internal(err)
	}

	e.notify(ctx, models.AppointmentEvent{
		Event:         models.EventAppointmentCancelled,
		AppointmentID: appointment.AppointmentID,
		StudentID:     studentID,
		ProfessorID:   professorID,
		TimeSlot:      appointment.TimeSlot,
		OccurredAt:    time.Now(),
	})

	return fmt.Sprintf("Appointment with Student %s has been successfully canceled by Professor %s.", studentID, professorID), nil
}
