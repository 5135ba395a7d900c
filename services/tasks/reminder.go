package tasks

import (
	"context"
	"encoding/json"
	"time"

	"contour/config"
	"contour/models"

	"github.com/hibiken/asynq"
)

const TypePaymentReminder = "reminder:payment"

// NewPaymentReminderTask builds a scheduled payment-reminder task.
func NewPaymentReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePaymentReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues payment-reminder tasks for later delivery.
type ReminderScheduler interface {
	Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// AsynqScheduler is the Redis-backed ReminderScheduler.
type AsynqScheduler struct {
	client *asynq.Client
}

// NewAsynqScheduler constructs a scheduler over the reminder queue.
func NewAsynqScheduler() *AsynqScheduler {
	return &AsynqScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}),
	}
}

func (s *AsynqScheduler) Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewPaymentReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.client.EnqueueContext(ctx, task, opts...)
	return err
}

// Close releases the underlying asynq client.
func (s *AsynqScheduler) Close() error {
	return s.client.Close()
}
