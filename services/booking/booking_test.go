package booking

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"slotbook/database"
	"slotbook/database/repository/memstore"
	"slotbook/models"
	"slotbook/utils"

	"go.uber.org/zap"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []models.AppointmentEvent
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, event models.AppointmentEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return n.err
}

func newEngine(t *testing.T) (*DefaultBookingEngine, *memstore.Store, *recordingNotifier) {
	t.Helper()
	store := memstore.New()
	notifier := &recordingNotifier{}
	return NewBookingEngine(store.Availabilities(), store.Appointments(), notifier, zap.NewNop()), store, notifier
}

func assertKind(t *testing.T, err error, kind utils.ErrorKind) {
	t.Helper()
	if !utils.IsKind(err, kind) {
		t.Fatalf("expected %s error, got %v", kind, err)
	}
}

func TestSetAvailability_ReplaceSemantics(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newEngine(t)

	tests := []struct {
		name  string
		slots []string
	}{
		{"initial", []string{"T1", "T2", "T3"}},
		{"replace shorter", []string{"T9"}},
		{"order preserved", []string{"T3", "T1", "T2"}},
		{"duplicates kept verbatim", []string{"T1", "T1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.SetAvailability(ctx, "P1", tt.slots); err != nil {
				t.Fatalf("set: %v", err)
			}
			got, err := e.GetAvailability(ctx, "P1")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if !reflect.DeepEqual(got, tt.slots) {
				t.Errorf("got %v, want %v", got, tt.slots)
			}
		})
	}
}

func TestSetAvailability_RejectsEmpty(t *testing.T) {
	e, _, _ := newEngine(t)
	for _, slots := range [][]string{nil, {}} {
		_, err := e.SetAvailability(context.Background(), "P1", slots)
		assertKind(t, err, utils.KindInvalidInput)
	}
}

func TestGetAvailability_NotFound(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newEngine(t)

	_, err := e.GetAvailability(ctx, "P404")
	assertKind(t, err, utils.KindNotFound)

	_, _ = e.SetAvailability(ctx, "P1", []string{"T1"})
	if _, err := e.ReserveSlot(ctx, "A1", "P1", "T1"); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	_, err = e.GetAvailability(ctx, "P1")
	assertKind(t, err, utils.KindNotFound)
}

func TestReserveSlot_NoAvailabilityRecord(t *testing.T) {
	e, _, _ := newEngine(t)
	_, err := e.ReserveSlot(context.Background(), "A1", "P1", "T1")
	assertKind(t, err, utils.KindNotFound)

	var appErr *utils.AppError
	errors.As(err, &appErr)
	if appErr.Message != "No availability found for Professor P1." {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

func TestReserveSlot_AbsentSlotLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	e, store, notifier := newEngine(t)
	_, _ = e.SetAvailability(ctx, "P1", []string{"T1", "T2"})

	_, err := e.ReserveSlot(ctx, "A1", "P1", "T9")
	assertKind(t, err, utils.KindNotFound)

	slots, _ := e.GetAvailability(ctx, "P1")
	if !reflect.DeepEqual(slots, []string{"T1", "T2"}) {
		t.Errorf("availability changed: %v", slots)
	}
	if store.Appointments().Len() != 0 {
		t.Errorf("appointment created for absent slot")
	}
	if len(notifier.events) != 0 {
		t.Errorf("notification sent for failed reservation")
	}
}

func TestReserveSlot_Success(t *testing.T) {
	ctx := context.Background()
	e, store, notifier := newEngine(t)
	_, _ = e.SetAvailability(ctx, "P1", []string{"T1", "T2", "T1"})

	conf, err := e.ReserveSlot(ctx, "A1", "P1", "T1")
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if conf.StudentID != "A1" || conf.ProfessorID != "P1" || conf.TimeSlot != "T1" || conf.AppointmentID == "" {
		t.Errorf("unexpected confirmation %+v", conf)
	}
	if conf.Message != "Appointment booked successfully. Student A1 with Professor P1 at T1." {
		t.Errorf("unexpected message %q", conf.Message)
	}

	slots, _ := e.GetAvailability(ctx, "P1")
	if !reflect.DeepEqual(slots, []string{"T2", "T1"}) {
		t.Errorf("expected exactly one occurrence removed, got %v", slots)
	}

	pending, err := e.ListPendingAppointments(ctx, "A1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pending) != 1 || pending[0].Status != models.AppointmentPending || pending[0].TimeSlot != "T1" {
		t.Errorf("unexpected appointments %+v", pending)
	}
	if store.Appointments().Len() != 1 {
		t.Errorf("expected exactly one appointment, got %d", store.Appointments().Len())
	}
	if len(notifier.events) != 1 || notifier.events[0].Event != models.EventAppointmentBooked {
		t.Errorf("unexpected notifications %+v", notifier.events)
	}
}

func TestReserveSlot_RepeatFailsNotFound(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newEngine(t)
	_, _ = e.SetAvailability(ctx, "P1", []string{"T1", "T2"})

	if _, err := e.ReserveSlot(ctx, "A1", "P1", "T1"); err != nil {
		t.Fatalf("first reserve: %v", err)
	}
	_, err := e.ReserveSlot(ctx, "A1", "P1", "T1")
	assertKind(t, err, utils.KindNotFound)
}

func TestReserveSlot_ConcurrentAtMostOneWins(t *testing.T) {
	ctx := context.Background()
	e, store, _ := newEngine(t)
	_, _ = e.SetAvailability(ctx, "P1", []string{"T1", "T2"})

	const students = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < students; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := e.ReserveSlot(ctx, fmt.Sprintf("S%d", i), "P1", "T1")
			switch {
			case err == nil:
				mu.Lock()
				successes++
				mu.Unlock()
			case utils.IsKind(err, utils.KindConflict), utils.IsKind(err, utils.KindNotFound):
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("expected exactly one successful reservation, got %d", successes)
	}
	if n := store.Appointments().Len(); n != 1 {
		t.Fatalf("expected one appointment, got %d", n)
	}
	slots, _ := e.GetAvailability(ctx, "P1")
	if !reflect.DeepEqual(slots, []string{"T2"}) {
		t.Fatalf("unexpected remaining slots %v", slots)
	}
}

// racingAvailability reports the slot as present but loses the conditional update,
// as happens when another writer removes it between the read and the update.
type racingAvailability struct {
	*memstore.AvailabilityRepo
}

func (r racingAvailability) RemoveSlot(context.Context, string, string) error {
	return fmt.Errorf("slot gone: %w", database.ErrSlotTaken)
}

func TestReserveSlot_LostRaceIsConflict(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	_, _ = store.Availabilities().Upsert(ctx, "P1", []string{"T1"})
	e := NewBookingEngine(racingAvailability{store.Availabilities()}, store.Appointments(), nil, nil)

	_, err := e.ReserveSlot(ctx, "A1", "P1", "T1")
	assertKind(t, err, utils.KindConflict)
	if store.Appointments().Len() != 0 {
		t.Fatal("appointment must not be created when the slot was lost")
	}
}

type failingAppointments struct {
	*memstore.AppointmentRepo
}

func (failingAppointments) Create(context.Context, *models.Appointment) error {
	return errors.New("write concern failed")
}

func TestReserveSlot_AppointmentWriteFailureKeepsSlotRemoved(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	notifier := &recordingNotifier{}
	e := NewBookingEngine(store.Availabilities(), failingAppointments{store.Appointments()}, notifier, zap.NewNop())
	_, _ = e.SetAvailability(ctx, "P1", []string{"T1", "T2"})

	_, err := e.ReserveSlot(ctx, "A1", "P1", "T1")
	assertKind(t, err, utils.KindInternal)

	slots, _ := e.GetAvailability(ctx, "P1")
	if !reflect.DeepEqual(slots, []string{"T2"}) {
		t.Fatalf("slot removal must not be rolled back, got %v", slots)
	}
	if len(notifier.events) != 0 {
		t.Fatal("no notification expected on partial failure")
	}
}

func TestReserveSlot_NotifierFailureDoesNotFailBooking(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	notifier := &recordingNotifier{err: errors.New("queue down")}
	e := NewBookingEngine(store.Availabilities(), store.Appointments(), notifier, zap.NewNop())
	_, _ = e.SetAvailability(ctx, "P1", []string{"T1"})

	if _, err := e.ReserveSlot(ctx, "A1", "P1", "T1"); err != nil {
		t.Fatalf("reserve should succeed despite notifier failure: %v", err)
	}
}

func TestCancelAppointment(t *testing.T) {
	ctx := context.Background()
	e, store, notifier := newEngine(t)
	_, _ = e.SetAvailability(ctx, "P1", []string{"T1", "T2"})

	_, err := e.CancelAppointment(ctx, "P1", "A1")
	assertKind(t, err, utils.KindNotFound)

	if _, err := e.ReserveSlot(ctx, "A1", "P1", "T1"); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	msg, err := e.CancelAppointment(ctx, "P1", "A1")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if msg != "Appointment with Student A1 has been successfully canceled by Professor P1." {
		t.Errorf("unexpected message %q", msg)
	}
	if store.Appointments().Len() != 0 {
		t.Error("appointment not deleted")
	}

	slots, _ := e.GetAvailability(ctx, "P1")
	if !reflect.DeepEqual(slots, []string{"T2"}) {
		t.Errorf("cancelled slot must not be restored, got %v", slots)
	}

	last := notifier.events[len(notifier.events)-1]
	if last.Event != models.EventAppointmentCancelled || last.TimeSlot != "T1" {
		t.Errorf("unexpected cancellation event %+v", last)
	}

	_, err = e.CancelAppointment(ctx, "P1", "A1")
	assertKind(t, err, utils.KindNotFound)
}

func TestListPendingAppointments_EmptyIsNotFound(t *testing.T) {
	e, _, _ := newEngine(t)
	_, err := e.ListPendingAppointments(context.Background(), "A1")
	assertKind(t, err, utils.KindNotFound)

	var appErr *utils.AppError
	errors.As(err, &appErr)
	if appErr.Message != "No pending appointments found." {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

type brokenAvailability struct {
	*memstore.AvailabilityRepo
}

func (brokenAvailability) GetByProfessorID(context.Context, string) (*models.Availability, error) {
	return nil, errors.New("connection reset")
}

func TestStoreFailuresAreInternal(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	e := NewBookingEngine(brokenAvailability{store.Availabilities()}, store.Appointments(), nil, nil)

	_, err := e.ReserveSlot(ctx, "A1", "P1", "T1")
	assertKind(t, err, utils.KindInternal)
	_, err = e.GetAvailability(ctx, "P1")
	assertKind(t, err, utils.KindInternal)
}

func TestEndToEndScenario(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newEngine(t)

	if _, err := e.SetAvailability(ctx, "P1", []string{"T1", "T2", "T3"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := e.ReserveSlot(ctx, "A1", "P1", "T1"); err != nil {
		t.Fatalf("A1 reserve: %v", err)
	}
	slots, _ := e.GetAvailability(ctx, "P1")
	if !reflect.DeepEqual(slots, []string{"T2", "T3"}) {
		t.Fatalf("unexpected availability %v", slots)
	}
	if _, err := e.ReserveSlot(ctx, "A2", "P1", "T2"); err != nil {
		t.Fatalf("A2 reserve: %v", err)
	}
	if _, err := e.CancelAppointment(ctx, "P1", "A1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	_, err := e.ListPendingAppointments(ctx, "A1")
	assertKind(t, err, utils.KindNotFound)

	pending, err := e.ListPendingAppointments(ctx, "A2")
	if err != nil || len(pending) != 1 {
		t.Fatalf("A2 should keep its appointment: %v %+v", err, pending)
	}
}
