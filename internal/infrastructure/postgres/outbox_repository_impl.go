package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/auth-service/internal/domain/entity"
	"github.com/oksasatya/auth-service/internal/domain/repository"
)

type OutboxRepository struct {
	pool *pgxpool.Pool
}

func NewOutboxRepository(pool *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{pool: pool}
}

// FetchPendingBatch returns up to limit pending events, oldest first.
// SKIP LOCKED keeps a second dispatcher instance from double-claiming rows.
func (r *OutboxRepository) FetchPendingBatch(ctx context.Context, limit int) ([]*entity.OutboxEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, event_type, aggregate_id, payload, status, occurred_at, published_at, retry_count, last_error
		FROM outbox_event
		WHERE status = 'pending'
		ORDER BY occurred_at ASC, id ASC
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*entity.OutboxEvent, 0, limit)
	for rows.Next() {
		ev := &entity.OutboxEvent{}
		var lastError *string
		if err := rows.Scan(&ev.ID, &ev.EventType, &ev.AggregateID, &ev.Payload,
			&ev.Status, &ev.OccurredAt, &ev.PublishedAt, &ev.RetryCount, &lastError); err != nil {
			return nil, err
		}
		if lastError != nil {
			ev.LastError = *lastError
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// MarkProcessing flags a claimed batch so operators can see in-flight work.
func (r *OutboxRepository) MarkProcessing(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE outbox_event SET status = 'processing' WHERE id = ANY($1)
	`, ids)
	return err
}

// FinalizeBatch applies every terminal status of a batch in one transaction.
func (r *OutboxRepository) FinalizeBatch(ctx context.Context, results []repository.OutboxResult) error {
	if len(results) == 0 {
		return nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, res := range results {
		if res.Published {
			_, err = tx.Exec(ctx, `
				UPDATE outbox_event
				SET status = 'published', published_at = now(), last_error = NULL
				WHERE id = $1
			`, res.EventID)
		} else {
			_, err = tx.Exec(ctx, `
				UPDATE outbox_event
				SET status = 'failed', retry_count = retry_count + 1, last_error = $2
				WHERE id = $1
			`, res.EventID, res.Error)
		}
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

var _ repository.OutboxRepository = (*OutboxRepository)(nil)
