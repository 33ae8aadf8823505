package cron

import (
	"context"
	"errors"
	"testing"

	"slotbook/models"
	"slotbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type fakeNotifier struct {
	events []models.AppointmentEvent
	err    error
}

func (f *fakeNotifier) Deliver(_ context.Context, event models.AppointmentEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func TestHandleAppointmentTask(t *testing.T) {
	svc := &fakeNotifier{}
	handler := handleAppointmentTask(svc, zap.NewNop())

	task, err := tasks.NewAppointmentTask(models.AppointmentEvent{
		Event:       models.EventAppointmentCancelled,
		StudentID:   "A1",
		ProfessorID: "P1",
	})
	if err != nil {
		t.Fatalf("task: %v", err)
	}
	if err := handler(context.Background(), task); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(svc.events) != 1 || svc.events[0].StudentID != "A1" {
		t.Fatalf("unexpected deliveries %+v", svc.events)
	}
}

func TestHandleAppointmentTask_MalformedSkipsRetry(t *testing.T) {
	handler := handleAppointmentTask(&fakeNotifier{}, zap.NewNop())

	err := handler(context.Background(), asynq.NewTask(tasks.TypeAppointmentBooked, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}

func TestHandleAppointmentTask_PropagatesDeliveryError(t *testing.T) {
	boom := errors.New("store down")
	handler := handleAppointmentTask(&fakeNotifier{err: boom}, zap.NewNop())

	task, _ := tasks.NewAppointmentTask(models.AppointmentEvent{Event: models.EventAppointmentBooked})
	if err := handler(context.Background(), task); !errors.Is(err, boom) {
		t.Fatalf("expected delivery error, got %v", err)
	}
}
