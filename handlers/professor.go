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

type ProfessorHandler struct {
	Booking booking.ProfessorActions
}

func NewProfessorHandler(engine booking.ProfessorActions) *ProfessorHandler {
	return &ProfessorHandler{Booking: engine}
}

// SetAvailabilityHandler handles POST /professor/availability.
func (h *ProfessorHandler) SetAvailabilityHandler(c *gin.Context) {
	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.InvalidInput("Available slots must be a non-empty array of strings."))
		return
	}

	professorID := middleware.CallerID(c)
	availability, err := h.Booking.SetAvailability(c.Request.Context(), professorID, req.AvailableSlots)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("availability updated",
		zap.String("professorId", professorID),
		zap.Int("slots", len(availability.AvailableSlots)))
	c.JSON(http.StatusOK, gin.H{
		"message":      "Availability updated successfully.",
		"availability": availability,
	})
}

// GetOwnAvailabilityHandler handles GET /professor/availability.
func (h *ProfessorHandler) GetOwnAvailabilityHandler(c *gin.Context) {
	slots, err := h.Booking.GetAvailability(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Available slots fetched successfully.",
		"availableSlots": slots,
	})
}

// CancelAppointmentHandler handles DELETE /professor/:profId/student/:studentId/cancel.
func (h *ProfessorHandler) CancelAppointmentHandler(c *gin.Context) {
	var uri professorStudentURI
	if err := bindURI(c, &uri); err != nil {
		utils.RespondError(c, err)
		return
	}
	if middleware.CallerID(c) != uri.ProfID {
		utils.RespondError(c, utils.Forbidden("Access denied. You are not authorized to cancel this appointment."))
		return
	}

	message, err := h.Booking.CancelAppointment(c.Request.Context(), uri.ProfID, uri.StudentID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("appointment cancelled",
		zap.String("professorId", uri.ProfID),
		zap.String("studentId", uri.StudentID))
	c.JSON(http.StatusOK, gin.H{"message": message})
}
