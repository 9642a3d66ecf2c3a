// Package job runs background work on asynq.
//
// It is only started when email delivery is configured as "queue": quote
// confirmations are then enqueued from the request and sent by a worker
// with retries, instead of being attempted once inline.
package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/yardsolutions/quotes-backend/internal/config"
	"github.com/yardsolutions/quotes-backend/internal/lib/email"
)

// QuoteMailer sends quote confirmations; *email.Client implements it.
type QuoteMailer interface {
	SendQuoteEmail(ctx context.Context, q email.QuoteEmail) error
}

// Enqueuer is the subset of *asynq.Client used to schedule tasks.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type JobService struct {
	client Enqueuer
	closer func() error
	server *asynq.Server
	mailer QuoteMailer
	logger *zerolog.Logger
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config, mailer QuoteMailer) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			QueueCritical: 6,
			QueueDefault:  3,
			QueueLow:      1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			retried, _ := asynq.GetRetryCount(ctx)
			maxRetry, _ := asynq.GetMaxRetry(ctx)
			logger.Error().
				Err(err).
				Str("task", task.Type()).
				Int("retry", retried).
				Int("max_retry", maxRetry).
				Msg("background task failed")
		}),
	})

	return &JobService{
		client: client,
		closer: client.Close,
		server: server,
		mailer: mailer,
		logger: logger,
	}
}

// Start registers task handlers and starts the worker pool. It does not block.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskQuoteEmail, j.handleQuoteEmailTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return fmt.Errorf("starting job server: %w", err)
	}

	return nil
}

func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if j.closer != nil {
		if err := j.closer(); err != nil {
			j.logger.Warn().Err(err).Msg("failed to close job client")
		}
	}
}
