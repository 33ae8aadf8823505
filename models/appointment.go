package models

import "time"

const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
)

// Appointment binds one student, one professor and one consumed slot.
type Appointment struct {
	AppointmentID string    `bson:"appointmentId" json:"appointmentId"`
	StudentID     string    `bson:"studentId" json:"studentId"`
	ProfessorID   string    `bson:"professorId" json:"professorId"`
	TimeSlot      string    `bson:"timeSlot" json:"timeSlot"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// BookSlotRequest is the body of a reservation request.
type BookSlotRequest struct {
	Time string `json:"time" binding:"required"`
}

// AppointmentConfirmation is returned after a successful reservation.
type AppointmentConfirmation struct {
	AppointmentID string `json:"appointmentId"`
	StudentID     string `json:"studentId"`
	ProfessorID   string `json:"professorId"`
	TimeSlot      string `json:"timeSlot"`
	Message       string `json:"message"`
}
