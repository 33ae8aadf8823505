package models

import "time"

const (
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentCancelled = "appointment.cancelled"
)

// AppointmentEvent is the payload of a booking notification task.
type AppointmentEvent struct {
	Event         string    `json:"event"`
	AppointmentID string    `json:"appointmentId,omitempty"`
	StudentID     string    `json:"studentId"`
	ProfessorID   string    `json:"professorId"`
	TimeSlot      string    `json:"timeSlot,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}
