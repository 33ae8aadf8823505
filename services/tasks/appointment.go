package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"slotbook/models"

	"github.com/hibiken/asynq"
)

const (
	TypeAppointmentBooked    = "appointment:booked"
	TypeAppointmentCancelled = "appointment:cancelled"
)

// TaskType maps an appointment event to its queue task type.
func TaskType(event string) (string, error) {
	switch event {
	case models.EventAppointmentBooked:
		return TypeAppointmentBooked, nil
	case models.EventAppointmentCancelled:
		return TypeAppointmentCancelled, nil
	default:
		return "", fmt.Errorf("unknown appointment event %q", event)
	}
}

func NewAppointmentTask(event models.AppointmentEvent) (*asynq.Task, error) {
	taskType, err := TaskType(event.Event)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskType, b, asynq.MaxRetry(5)), nil
}

// ParseAppointmentTask decodes a task produced by NewAppointmentTask.
func ParseAppointmentTask(task *asynq.Task) (models.AppointmentEvent, error) {
	var event models.AppointmentEvent
	if err := json.Unmarshal(task.Payload(), &event); err != nil {
		return event, fmt.Errorf("invalid appointment task payload: %w", err)
	}
	return event, nil
}

// Enqueuer is the subset of *asynq.Client used to publish tasks.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier publishes appointment events as asynq tasks.
type QueueNotifier struct {
	client Enqueuer
}

func NewQueueNotifier(client Enqueuer) *QueueNotifier {
	return &QueueNotifier{client: client}
}

func (n *QueueNotifier) Notify(ctx context.Context, event models.AppointmentEvent) error {
	task, err := NewAppointmentTask(event)
	if err != nil {
		return err
	}
	if _, err := n.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", task.Type(), err)
	}
	return nil
}

// NopNotifier drops every event.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, models.AppointmentEvent) error { return nil }
