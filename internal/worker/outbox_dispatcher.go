package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/auth-service/internal/domain/repository"
)

const (
	DefaultBatchSize    = 100
	DefaultPollInterval = 5 * time.Second
)

// OutboxDispatcher drains pending outbox events and publishes them. One
// instance is assumed active at a time; a second instance only risks
// duplicate publishes, never lost events.
type OutboxDispatcher struct {
	Store        repository.OutboxRepository
	Publisher    Publisher
	Logger       *logrus.Logger
	BatchSize    int
	PollInterval time.Duration
}

func NewOutboxDispatcher(store repository.OutboxRepository, pub Publisher, logger *logrus.Logger) *OutboxDispatcher {
	return &OutboxDispatcher{
		Store:        store,
		Publisher:    pub,
		Logger:       logger,
		BatchSize:    DefaultBatchSize,
		PollInterval: DefaultPollInterval,
	}
}

// Run polls until the context is cancelled. An empty batch sleeps the poll
// interval; a non-empty batch loops immediately to drain backlog faster.
// Transient errors are logged and treated as an empty batch, the loop never
// terminates on them.
func (d *OutboxDispatcher) Run(ctx context.Context) {
	d.Logger.WithFields(logrus.Fields{
		"batch_size":    d.BatchSize,
		"poll_interval": d.PollInterval,
	}).Info("outbox dispatcher started")

	for {
		processed, err := d.ProcessBatch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			d.Logger.WithError(err).Error("outbox batch failed")
			processed = 0
		}
		if processed > 0 {
			continue
		}
		select {
		case <-ctx.Done():
			d.Logger.Info("outbox dispatcher stopped")
			return
		case <-time.After(d.PollInterval):
		}
	}
	d.Logger.Info("outbox dispatcher stopped")
}

// ProcessBatch handles one batch and reports how many events it processed.
// Each event ends up published or failed; a single publish failure never
// aborts the rest of the batch, and all status changes commit together.
func (d *OutboxDispatcher) ProcessBatch(ctx context.Context) (int, error) {
	events, err := d.Store.FetchPendingBatch(ctx, d.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}
	d.Logger.WithField("count", len(events)).Info("processing outbox batch")

	ids := make([]string, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.ID)
	}
	if err := d.Store.MarkProcessing(ctx, ids); err != nil {
		return 0, err
	}

	results := make([]repository.OutboxResult, 0, len(events))
	for _, ev := range events {
		if err := d.Publisher.Publish(ctx, ev.EventType, ev.Payload); err != nil {
			d.Logger.WithFields(logrus.Fields{
				"event_id":   ev.ID,
				"event_type": ev.EventType,
			}).WithError(err).Error("failed to publish outbox event")
			results = append(results, repository.OutboxResult{EventID: ev.ID, Error: err.Error()})
			continue
		}
		results = append(results, repository.OutboxResult{EventID: ev.ID, Published: true})
	}

	if err := d.Store.FinalizeBatch(ctx, results); err != nil {
		return 0, err
	}
	return len(events), nil
}
