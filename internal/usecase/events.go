package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
)

// eventPublisher emits catalog events to the Redis Stream. Delivery is best
// effort: failures are logged and never surfaced to the caller, and a nil
// stream repository disables publishing entirely.
type eventPublisher struct {
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func (p eventPublisher) publish(ctx context.Context, eventType string, entityID int64) {
	if p.streamRepo == nil {
		return
	}
	event := domain.CatalogEvent{
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
	if err := p.streamRepo.PublishToStream(ctx, domain.StreamCatalogEvents, event); err != nil {
		p.logger.Warn("Failed to publish catalog event",
			zap.String("type", eventType),
			zap.Int64("entity_id", entityID),
			zap.Error(err))
	}
}
