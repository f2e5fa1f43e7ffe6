package claim

import (
	"context"
	"encoding/json"

	"verichain/internal/domain/certificate"
)

// Sender delivers a keyed payload; *kafka.Producer satisfies it.
type Sender interface {
	Send(ctx context.Context, key string, payload []byte) error
}

// Publisher converts claim events into Kafka messages.
type Publisher struct {
	sender Sender
}

// NewPublisher constructs a Publisher.
func NewPublisher(sender Sender) *Publisher {
	return &Publisher{sender: sender}
}

// Publish pushes a claim event onto Kafka keyed by transaction hash.
func (p *Publisher) Publish(ctx context.Context, event certificate.ClaimEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.sender.Send(ctx, event.TxHash, payload)
}
