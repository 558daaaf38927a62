package repository

import (
	"context"

	"github.com/oksasatya/auth-service/internal/domain/entity"
)

// OutboxResult is the terminal outcome of one publish attempt.
type OutboxResult struct {
	EventID   string
	Published bool
	Error     string
}

// OutboxRepository is the dispatcher's view of the outbox table.
// FinalizeBatch applies all status changes of a batch in a single
// transaction.
type OutboxRepository interface {
	FetchPendingBatch(ctx context.Context, limit int) ([]*entity.OutboxEvent, error)
	MarkProcessing(ctx context.Context, ids []string) error
	FinalizeBatch(ctx context.Context, results []OutboxResult) error
}
