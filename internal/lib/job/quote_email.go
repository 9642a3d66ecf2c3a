package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/yardsolutions/quotes-backend/internal/lib/email"
)

const (
	TaskQuoteEmail = "email:quote_confirmation"

	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// NewQuoteEmailTask wraps a confirmation in a task retried up to three times.
func NewQuoteEmailTask(q email.QuoteEmail) (*asynq.Task, error) {
	payload, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskQuoteEmail,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueCritical),
		asynq.Timeout(30*time.Second),
	), nil
}

// SendQuoteEmail enqueues the confirmation for a worker to send.
func (j *JobService) SendQuoteEmail(ctx context.Context, q email.QuoteEmail) error {
	task, err := NewQuoteEmailTask(q)
	if err != nil {
		return fmt.Errorf("building quote email task: %w", err)
	}

	info, err := j.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueueing quote email: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("quote email enqueued")

	return nil
}

func (j *JobService) handleQuoteEmailTask(ctx context.Context, t *asynq.Task) error {
	var q email.QuoteEmail
	if err := json.Unmarshal(t.Payload(), &q); err != nil {
		return fmt.Errorf("failed to unmarshal quote email payload: %w: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", "quote_confirmation").
		Str("to", q.ToEmail).
		Logger()

	logger.Info().Msg("processing quote email task")

	if err := j.mailer.SendQuoteEmail(ctx, q); err != nil {
		logger.Error().Err(err).Msg("failed to send quote email")
		return err
	}

	logger.Info().Msg("sent quote email")
	return nil
}
