package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/usecase"
	"github.com/senda-infinita/internal/worker"
)

// RefreshWorker consumes catalog events and rewrites the cached statistics
// snapshot after every mutation. Losing an event only delays a refresh until
// the cache TTL expires, so processing is deliberately simple: refresh, ack.
type RefreshWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	statsUC      *usecase.StatsUseCase
	consumerName string
}

// NewRefreshWorker creates a RefreshWorker with a host-unique consumer name.
func NewRefreshWorker(
	streamRepo repository.StreamRepository,
	statsUC *usecase.StatsUseCase,
	consumerGroup string,
	logger *zap.Logger,
) *RefreshWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &RefreshWorker{
		BaseWorker:   worker.NewBaseWorker("stats-refresh", consumerGroup, logger),
		streamRepo:   streamRepo,
		statsUC:      statsUC,
		consumerName: consumerName,
	}
}

// Start runs the consume loop until shutdown.
func (w *RefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting stats refresh worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamCatalogEvents, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(consumeCtx, domain.StreamCatalogEvents, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

func (w *RefreshWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.CatalogEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Skipping malformed catalog event",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// Ack anyway, a malformed message never becomes parseable.
		w.ack(ctx, msg.ID)
		return
	}

	logger.Debug("Catalog event received",
		zap.String("type", event.Type),
		zap.Int64("entity_id", event.EntityID))

	if _, err := w.statsUC.RefreshStatistics(ctx); err != nil {
		logger.Error("Failed to refresh statistics",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// Leave the message pending so another consumer can retry.
		return
	}

	w.ack(ctx, msg.ID)
}

func (w *RefreshWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamCatalogEvents, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Warn("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
