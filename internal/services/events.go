package services

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/avoskresensky/user-admin-service/internal/logger"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes one event to Kafka. Publishing is best effort:
// a nil writer is skipped and failures are logged, never surfaced to the
// request that triggered the event.
func publishEvent(ctx context.Context, writer KafkaWriter, key string, event any) {
	if writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping event", "key", key)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event for Kafka", "key", key, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event to Kafka", "key", key, "error", err)
		return
	}
	logger.Log.Infow("event published to Kafka", "key", key)
}
