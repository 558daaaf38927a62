package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/oksasatya/auth-service/config"
	pginfra "github.com/oksasatya/auth-service/internal/infrastructure/postgres"
	"github.com/oksasatya/auth-service/internal/worker"
	"github.com/oksasatya/auth-service/pkg/helpers"
)

// Outbox dispatcher process. Runs independently of the API server and is
// meant to be deployed as a single active instance.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-outbox", cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	// The broker is optional: without RabbitMQ the dispatcher publishes to
	// the log, which keeps the outbox draining in development.
	var pub worker.Publisher = worker.NewLogPublisher(logger)
	if cfg.RabbitMQURL != "" {
		rp, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEventQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable, falling back to log publisher")
		} else {
			defer rp.Close()
			pub = worker.NewQueuePublisher(rp)
		}
	}

	dispatcher := worker.NewOutboxDispatcher(pginfra.NewOutboxRepository(pool), pub, logger)
	dispatcher.BatchSize = cfg.OutboxBatchSize
	dispatcher.PollInterval = cfg.OutboxPollInterval

	done := make(chan struct{})
	go func() {
		dispatcher.Run(ctx)
		close(done)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down outbox worker")
	cancel()
	<-done
}
