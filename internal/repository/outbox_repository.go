package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodstore/internal/db"
	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/port"
)

type outboxRepository struct {
	q *db.Queries
}

func NewOutbox(pool *pgxpool.Pool) port.OutboxRepository {
	return &outboxRepository{q: db.New(pool)}
}

// ListUnpublished returns up to limit events that have not been published yet,
// oldest first.
func (r *outboxRepository) ListUnpublished(ctx context.Context, limit int32) ([]domain.OutboxEvent, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	rows, err := r.q.ListUnpublishedOutboxEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("q.ListUnpublishedOutboxEvents: %w", err)
	}

	events := make([]domain.OutboxEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, domain.OutboxEvent{
			ID:          row.ID,
			AggregateID: row.AggregateID,
			EventType:   row.EventType,
			Payload:     row.Payload,
			CreatedAt:   row.CreatedAt,
		})
	}

	return events, nil
}

// MarkPublished is a no-op for an event that is already marked.
func (r *outboxRepository) MarkPublished(ctx context.Context, eventID uuid.UUID) error {
	if _, err := r.q.MarkOutboxEventPublished(ctx, eventID); err != nil {
		return fmt.Errorf("q.MarkOutboxEventPublished: %w", err)
	}

	return nil
}
