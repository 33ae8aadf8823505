package booking

import (
	"context"

	"slotbook/models"
	"slotbook/utils"
)

// ListPendingAppointments returns the student's pending appointments. An empty
// result is reported as not found rather than as an empty list.
func (e *DefaultBookingEngine) ListPendingAppointments(ctx context.Context, studentID string) ([]models.Appointment, error) {
	appointments, err := e.Appointments.ListByStudentAndStatus(ctx, studentID, models.AppointmentPending)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if len(appointments) == 0 {
		return nil, utils.NotFound("No pending appointments found.")
	}
	return appointments, nil
}
