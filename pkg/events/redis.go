package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisPublisher publishes processing events to a Redis stream.
type RedisPublisher struct {
	client *redis.Client
	stream string
	logger *zap.Logger
}

// NewRedisPublisher creates a publisher writing to the given stream.
func NewRedisPublisher(client *redis.Client, stream string, logger *zap.Logger) *RedisPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisPublisher{
		client: client,
		stream: stream,
		logger: logger,
	}
}

// Publish appends the event to the Redis stream as a JSON payload.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	_, err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("published event",
		zap.String("stream", p.stream),
		zap.String("type", string(event.Type)),
		zap.String("correlation_id", event.CorrelationID),
	)

	return nil
}
