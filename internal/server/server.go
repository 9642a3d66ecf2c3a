// Package server holds the application container.
//
// Server owns the lifecycle of every long-lived dependency: configuration,
// logger and New Relic service, database pool, optional Redis client and
// job workers, object store client, mailer and the http.Server itself.
// Each dependency is built once here and injected into the layers above.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/yardsolutions/quotes-backend/internal/config"
	"github.com/yardsolutions/quotes-backend/internal/database"
	"github.com/yardsolutions/quotes-backend/internal/lib/email"
	"github.com/yardsolutions/quotes-backend/internal/lib/job"
	"github.com/yardsolutions/quotes-backend/internal/lib/storage"
	loggerPkg "github.com/yardsolutions/quotes-backend/internal/logger"
)

type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService
	DB            *database.Database

	// Redis and Job are nil unless redis.address is configured.
	Redis *redis.Client
	Job   *job.JobService

	Storage *storage.Client
	Email   *email.Client

	httpServer *http.Server
}

// New builds every dependency. Redis is optional: a failed ping is logged,
// except when queued email delivery depends on it. When the job service
// fails to start, everything built so far is closed again.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(ctx, cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	store, err := storage.NewClient(ctx, cfg.Storage)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize object store: %w", err)
	}

	s := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
		Storage:       store,
		Email:         email.NewClient(cfg, logger),
	}

	if cfg.Redis.Address != "" {
		s.Redis = newRedisClient(ctx, cfg, logger, loggerService)
	}

	if cfg.Email.Delivery == config.EmailDeliveryQueue {
		s.Job = job.NewJobService(logger, cfg, s.Email)
		if err := s.Job.Start(); err != nil {
			return nil, errors.Join(err, s.Shutdown(ctx))
		}
	}

	return s, nil
}

func newRedisClient(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Address})

	if loggerService != nil && loggerService.GetApplication() != nil {
		client.AddHook(nrredis.NewHook(client.Options()))
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Error().Err(err).Str("address", cfg.Redis.Address).Msg("failed to connect to redis")
	}

	return client
}

// SetupHTTPServer configures the http.Server with the router and timeouts.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start serves HTTP until Shutdown is called. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains HTTP requests first, then closes the remaining dependencies.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown HTTP server: %w", err))
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
		}
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database connection: %w", err))
		}
	}

	return errors.Join(errs...)
}
