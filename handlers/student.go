package handlers

import (
	"net/http"

	"slotbook/middleware"
	"slotbook/models"
	"slotbook/services/booking"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StudentHandler struct {
	Booking booking.StudentActions
}

func NewStudentHandler(engine booking.StudentActions) *StudentHandler {
	return &StudentHandler{Booking: engine}
}

// GetProfessorAvailabilityHandler handles GET /student/:studentId/professor/:profId/availability.
func (h *StudentHandler) GetProfessorAvailabilityHandler(c *gin.Context) {
	var uri professorStudentURI
	if err := bindURI(c, &uri); err != nil {
		utils.RespondError(c, err)
		return
	}
	if middleware.CallerID(c) != uri.StudentID {
		utils.RespondError(c, utils.Forbidden("Access denied. You are not authorized to view this information."))
		return
	}

	slots, err := h.Booking.GetAvailability(c.Request.Context(), uri.ProfID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Available slots fetched successfully.",
		"availableSlots": slots,
	})
}

// BookAppointmentHandler handles POST /student/:studentId/professor/:profId/book.
func (h *StudentHandler) BookAppointmentHandler(c *gin.Context) {
	var uri professorStudentURI
	if err := bindURI(c, &uri); err != nil {
		utils.RespondError(c, err)
		return
	}
	var req models.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.InvalidInput("Time slot must be provided as a string."))
		return
	}
	if middleware.CallerID(c) != uri.StudentID {
		utils.RespondError(c, utils.Forbidden("Access denied. You can only book appointments for yourself."))
		return
	}

	confirmation, err := h.Booking.ReserveSlot(c.Request.Context(), uri.StudentID, uri.ProfID, req.Time)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("appointment booked",
		zap.String("appointmentId", confirmation.AppointmentID),
		zap.String("studentId", uri.StudentID),
		zap.String("professorId", uri.ProfID),
		zap.String("slot", req.Time))
	c.JSON(http.StatusCreated, confirmation)
}

// GetPendingAppointmentsHandler handles GET /student/:studentId/appointments.
func (h *StudentHandler) GetPendingAppointmentsHandler(c *gin.Context) {
	var uri studentURI
	if err := bindURI(c, &uri); err != nil {
		utils.RespondError(c, err)
		return
	}
	if middleware.CallerID(c) != uri.StudentID {
		utils.RespondError(c, utils.Forbidden("Access denied. You can only view your own appointments."))
		return
	}

	appointments, err := h.Booking.ListPendingAppointments(c.Request.Context(), uri.StudentID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Pending appointments fetched successfully.",
		"appointments": appointments,
	})
}
