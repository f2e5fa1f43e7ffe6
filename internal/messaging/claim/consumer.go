package claim

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"verichain/internal/domain/certificate"
	"verichain/internal/kafka"
)

// Handler reacts to decoded claim events.
type Handler interface {
	HandleClaim(ctx context.Context, event certificate.ClaimEvent) error
}

// HandlerFunc makes ordinary functions usable as claim handlers.
type HandlerFunc func(ctx context.Context, event certificate.ClaimEvent) error

// HandleClaim implements Handler.
func (f HandlerFunc) HandleClaim(ctx context.Context, event certificate.ClaimEvent) error {
	return f(ctx, event)
}

// Consumer wraps a low-level Kafka consumer and decodes claim events.
type Consumer struct {
	consumer *kafka.Consumer
}

// NewConsumer wires the handler through the low-level consumer.
func NewConsumer(brokers []string, groupID, topic string, handler Handler, log *zap.Logger) (*Consumer, error) {
	cons, err := kafka.NewConsumer(brokers, groupID, topic, Decoder(handler, log), log)
	if err != nil {
		return nil, err
	}
	return &Consumer{consumer: cons}, nil
}

// Decoder adapts a claim Handler to raw Kafka payloads. Undecodable payloads
// are logged and dropped.
func Decoder(handler Handler, log *zap.Logger) kafka.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(ctx context.Context, value []byte) error {
		var event certificate.ClaimEvent
		if err := json.Unmarshal(value, &event); err != nil {
			log.Warn("claim consumer decode error", zap.Error(err))
			return nil
		}
		if event.TxHash == "" {
			log.Warn("claim consumer dropped event without tx hash")
			return nil
		}
		return handler.HandleClaim(ctx, event)
	}
}

// Start begins consuming events.
func (c *Consumer) Start(ctx context.Context) error {
	return c.consumer.Start(ctx)
}

// Close cleans up resources.
func (c *Consumer) Close() error {
	return c.consumer.Close()
}
