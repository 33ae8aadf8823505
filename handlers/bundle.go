package handlers

import (
	"slotbook/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Auth middleware.Authenticator

	// Auth endpoints
	SignupHandler gin.HandlerFunc
	LoginHandler  gin.HandlerFunc
	LogoutHandler gin.HandlerFunc

	// Professor endpoints
	SetAvailabilityHandler    gin.HandlerFunc
	GetOwnAvailabilityHandler gin.HandlerFunc
	CancelAppointmentHandler  gin.HandlerFunc

	// Student endpoints
	GetProfessorAvailabilityHandler gin.HandlerFunc
	BookAppointmentHandler          gin.HandlerFunc
	GetPendingAppointmentsHandler   gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handlers of each role onto a bundle.
func NewHandlerBundle(auth middleware.Authenticator, authH *AuthHandler, prof *ProfessorHandler, stud *StudentHandler) *HandlerBundle {
	return &HandlerBundle{
		Auth: auth,

		SignupHandler: authH.SignupHandler,
		LoginHandler:  authH.LoginHandler,
		LogoutHandler: authH.LogoutHandler,

		SetAvailabilityHandler:    prof.SetAvailabilityHandler,
		GetOwnAvailabilityHandler: prof.GetOwnAvailabilityHandler,
		CancelAppointmentHandler:  prof.CancelAppointmentHandler,

		GetProfessorAvailabilityHandler: stud.GetProfessorAvailabilityHandler,
		BookAppointmentHandler:          stud.BookAppointmentHandler,
		GetPendingAppointmentsHandler:   stud.GetPendingAppointmentsHandler,

		HealthHandler: HealthHandler,
	}
}
