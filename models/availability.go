package models

import "time"

// Availability is the ordered list of open slots for one professor.
type Availability struct {
	ProfessorID    string    `bson:"professorId" json:"professorId"`
	AvailableSlots []string  `bson:"availableSlots" json:"availableSlots"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SetAvailabilityRequest replaces a professor's slots wholesale.
type SetAvailabilityRequest struct {
	AvailableSlots []string `json:"availableSlots"`
}

// HasSlot reports whether slot is currently offered.
func (a *Availability) HasSlot(slot string) bool {
	return a.SlotIndex(slot) >= 0
}

// SlotIndex returns the position of the first occurrence of slot, or -1.
func (a *Availability) SlotIndex(slot string) int {
	for i, s := range a.AvailableSlots {
		if s == slot {
			return i
		}
	}
	return -1
}

// WithoutSlot returns a copy of slots with the first occurrence of slot removed.
func WithoutSlot(slots []string, slot string) ([]string, bool) {
	for i, s := range slots {
		if s == slot {
			out := make([]string, 0, len(slots)-1)
			out = append(out, slots[:i]...)
			return append(out, slots[i+1:]...), true
		}
	}
	return slots, false
}
