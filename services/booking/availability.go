package booking

import (
	"context"
	"errors"

	"slotbook/database"
	"slotbook/models"
	"slotbook/utils"
)

// SetAvailability replaces the professor's slots wholesale. Slots consumed by
// pending reservations are not merged back or excluded.
func (e *DefaultBookingEngine) SetAvailability(ctx context.Context, professorID string, slots []string) (*models.Availability, error) {
	if len(slots) == 0 {
		return nil, utils.InvalidInput("Available slots must be a non-empty array of strings.")
	}
	availability, err := e.Availability.Upsert(ctx, professorID, slots)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return availability, nil
}

func (e *DefaultBookingEngine) GetAvailability(ctx context.Context, professorID string) ([]string, error) {
	availability, err := e.Availability.GetByProfessorID(ctx, professorID)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, utils.Internal(err)
	}
	if availability == nil || len(availability.AvailableSlots) == 0 {
		return nil, utils.NotFound("No available slots found for this professor.")
	}
	return availability.AvailableSlots, nil
}
