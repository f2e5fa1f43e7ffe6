package kafka

import (
	"context"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"verichain/internal/observability/metrics"
)

// Producer wraps a synchronous Kafka producer.
type Producer struct {
	client sarama.SyncProducer
	topic  string
}

// NewProducer creates and connects a producer.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_5_0_0
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	producer, err := sarama.NewSyncProducer(cleanBrokers(brokers), cfg)
	if err != nil {
		return nil, err
	}
	return NewProducerWithClient(producer, topic), nil
}

// NewProducerWithClient wraps an existing sarama producer.
func NewProducerWithClient(client sarama.SyncProducer, topic string) *Producer {
	return &Producer{client: client, topic: topic}
}

// Close shuts down the producer.
func (p *Producer) Close() error {
	return p.client.Close()
}

// Send publishes a keyed payload to the configured topic.
func (p *Producer) Send(_ context.Context, key string, payload []byte) error {
	defer metrics.ObserveKafkaOperation("producer_send", time.Now())
	msg := &sarama.ProducerMessage{Topic: p.topic, Value: sarama.ByteEncoder(payload)}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}
	_, _, err := p.client.SendMessage(msg)
	return err
}

// ParseBrokers splits a comma-separated broker list.
func ParseBrokers(raw string) []string {
	return cleanBrokers(strings.Split(raw, ","))
}

func cleanBrokers(brokers []string) []string {
	cleaned := make([]string, 0, len(brokers))
	for _, b := range brokers {
		if trimmed := strings.TrimSpace(b); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
