// Package memstore keeps users, availabilities and appointments in process
// memory. Every method holds the store mutex for its whole duration, which gives
// the same per-operation atomicity the MongoDB repositories rely on.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"slotbook/database"
	"slotbook/models"

	"github.com/google/uuid"
)

type Store struct {
	mu             sync.Mutex
	users          map[string]models.User
	availabilities map[string]models.Availability
	appointments   []models.Appointment
}

func New() *Store {
	return &Store{
		users:          make(map[string]models.User),
		availabilities: make(map[string]models.Availability),
	}
}

// Users returns the store as a userRepo.UserRepository.
func (s *Store) Users() *UserRepo { return &UserRepo{s} }

// Availabilities returns the store as an availabilityRepo.AvailabilityRepository.
func (s *Store) Availabilities() *AvailabilityRepo { return &AvailabilityRepo{s} }

// Appointments returns the store as an appointmentRepo.AppointmentRepository.
func (s *Store) Appointments() *AppointmentRepo { return &AppointmentRepo{s} }

type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.UserID]; ok {
		return fmt.Errorf("user %s: %w", user.UserID, database.ErrDuplicate)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.s.users[user.UserID] = *user
	return nil
}

func (r *UserRepo) GetByUserID(_ context.Context, userID string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepo) GetByUserIDAndRole(ctx context.Context, userID, role string) (*models.User, error) {
	u, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Role != role {
		return nil, database.ErrNotFound
	}
	return u, nil
}

type AvailabilityRepo struct{ s *Store }

func (r *AvailabilityRepo) Upsert(_ context.Context, professorID string, slots []string) (*models.Availability, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a := models.Availability{
		ProfessorID:    professorID,
		AvailableSlots: append([]string(nil), slots...),
		UpdatedAt:      time.Now(),
	}
	r.s.availabilities[professorID] = a
	return cloneAvailability(a), nil
}

func (r *AvailabilityRepo) GetByProfessorID(_ context.Context, professorID string) (*models.Availability, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.availabilities[professorID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return cloneAvailability(a), nil
}

func (r *AvailabilityRepo) RemoveSlot(_ context.Context, professorID, slot string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.availabilities[professorID]
	if !ok {
		return fmt.Errorf("slot %s for professor %s: %w", slot, professorID, database.ErrSlotTaken)
	}
	remaining, removed := models.WithoutSlot(a.AvailableSlots, slot)
	if !removed {
		return fmt.Errorf("slot %s for professor %s: %w", slot, professorID, database.ErrSlotTaken)
	}
	a.AvailableSlots = remaining
	a.UpdatedAt = time.Now()
	r.s.availabilities[professorID] = a
	return nil
}

func cloneAvailability(a models.Availability) *models.Availability {
	a.AvailableSlots = append([]string(nil), a.AvailableSlots...)
	return &a
}

type AppointmentRepo struct{ s *Store }

func (r *AppointmentRepo) Create(_ context.Context, appointment *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if appointment.AppointmentID == "" {
		appointment.AppointmentID = uuid.New().String()
	}
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now()
	}
	r.s.appointments = append(r.s.appointments, *appointment)
	return nil
}

func (r *AppointmentRepo) DeleteByProfessorAndStudent(_ context.Context, professorID, studentID string) (*models.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, a := range r.s.appointments {
		if a.ProfessorID == professorID && a.StudentID == studentID {
			r.s.appointments = append(r.s.appointments[:i], r.s.appointments[i+1:]...)
			return &a, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *AppointmentRepo) ListByStudentAndStatus(_ context.Context, studentID, status string) ([]models.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.Appointment
	for _, a := range r.s.appointments {
		if a.StudentID == studentID && a.Status == status {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Len reports how many appointments are stored.
func (r *AppointmentRepo) Len() int {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.appointments)
}
