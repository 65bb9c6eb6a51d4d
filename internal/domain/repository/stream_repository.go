package repository

import (
	"context"

	"github.com/senda-infinita/internal/domain"
)

// StreamRepository defines the Redis Stream operations used for catalog
// event notifications.
type StreamRepository interface {
	// PublishToStream publishes a JSON-encoded message to the stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// CreateConsumerGroup creates the consumer group, tolerating an
	// already-existing one.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream reads messages through a consumer group. The channel is
	// closed when ctx is done.
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error
}
