package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodstore/internal/domain"
)

type OutboxRepository interface {
	ListUnpublished(ctx context.Context, limit int32) ([]domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, eventID uuid.UUID) error
}
