package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/senda-infinita/internal/domain"
	"github.com/senda-infinita/internal/domain/repository"
)

type streamRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewStreamRepository creates a Redis Streams backed StreamRepository.
func NewStreamRepository(client *redis.Client, logger *zap.Logger) repository.StreamRepository {
	return &streamRepository{
		client: client,
		logger: logger,
	}
}

// PublishToStream serializes the payload as JSON and appends it to the stream.
func (r *streamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		r.logger.Error("Failed to marshal stream payload",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to marshal stream payload: %w", err)
	}

	id, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"data": string(payload),
		},
	}).Result()
	if err != nil {
		r.logger.Error("Failed to publish to stream",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	r.logger.Debug("Message published to stream",
		zap.String("stream", stream),
		zap.String("message_id", id))
	return nil
}

// CreateConsumerGroup creates a consumer group starting at new messages.
// MKSTREAM creates the stream when it does not exist yet.
func (r *streamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	if err != nil {
		// BUSYGROUP means the group already exists, which is fine.
		if strings.HasPrefix(err.Error(), "BUSYGROUP") {
			r.logger.Debug("Consumer group already exists",
				zap.String("stream", stream),
				zap.String("group", group))
			return nil
		}
		r.logger.Error("Failed to create consumer group",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	r.logger.Info("Consumer group created",
		zap.String("stream", stream),
		zap.String("group", group))
	return nil
}

// ConsumeStream reads undelivered messages through the consumer group and
// forwards them on the returned channel until the context is cancelled.
func (r *streamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	msgChan := make(chan domain.StreamMessage, 10)

	go func() {
		defer close(msgChan)

		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stream consumer stopped",
					zap.String("stream", stream),
					zap.String("consumer", consumer))
				return
			default:
				result, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
					Group:    group,
					Consumer: consumer,
					Streams:  []string{stream, ">"},
					Count:    10,
					Block:    time.Second,
				}).Result()
				if err != nil {
					if err == redis.Nil {
						continue
					}
					if ctx.Err() != nil {
						return
					}
					r.logger.Error("Failed to read from stream",
						zap.String("stream", stream),
						zap.Error(err))
					time.Sleep(time.Second)
					continue
				}

				for _, res := range result {
					for _, msg := range res.Messages {
						data, ok := msg.Values["data"].(string)
						if !ok {
							r.logger.Warn("Stream message has no data field",
								zap.String("message_id", msg.ID))
							continue
						}

						select {
						case msgChan <- domain.StreamMessage{ID: msg.ID, Data: data}:
						case <-ctx.Done():
							return
						}
					}
				}
			}
		}
	}()

	return msgChan, nil
}

// AckMessage acknowledges a processed message in the consumer group.
func (r *streamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	if err := r.client.XAck(ctx, stream, group, messageID).Err(); err != nil {
		r.logger.Error("Failed to acknowledge message",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.String("message_id", messageID),
			zap.Error(err))
		return fmt.Errorf("failed to acknowledge message: %w", err)
	}
	return nil
}
