package cron

import (
	"context"
	"fmt"
	"time"

	"slotbook/config"
	"slotbook/services/notification"
	"slotbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisClientOpt builds the asynq connection options from configuration.
func RedisClientOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewServeMux registers the appointment notification handlers.
func NewServeMux(notifSvc notification.NotificationService, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	handler := handleAppointmentTask(notifSvc, logger)
	mux.HandleFunc(tasks.TypeAppointmentBooked, handler)
	mux.HandleFunc(tasks.TypeAppointmentCancelled, handler)
	return mux
}

// InitNotificationWorker runs the async worker in background. The returned
// server must be shut down by the caller.
func InitNotificationWorker(notifSvc notification.NotificationService, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		RedisClientOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)
	mux := NewServeMux(notifSvc, logger)

	go func() {
		logger.Info("starting notification worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Warn("notification worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("notification worker gave up; booking notifications will queue until restart")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleAppointmentTask(notifSvc notification.NotificationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		event, err := tasks.ParseAppointmentTask(task)
		if err != nil {
			logger.Error("dropping malformed notification task", zap.String("type", task.Type()), zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		if err := notifSvc.Deliver(ctx, event); err != nil {
			logger.Warn("notification delivery failed", zap.String("type", task.Type()), zap.Error(err))
			return err
		}
		return nil
	}
}
