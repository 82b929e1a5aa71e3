package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	defaultHeartbeatInterval = 3 * time.Second
	defaultSessionTimeout    = 30 * time.Second
)

// Consumer reads one topic as part of a consumer group and hands each message
// to a handler; a handler error stops the loop.
type Consumer struct {
	reader *kafka.Reader
}

type ConsumerOption func(*kafka.ReaderConfig)

func WithHeartbeatInterval(d time.Duration) ConsumerOption {
	return func(cfg *kafka.ReaderConfig) {
		cfg.HeartbeatInterval = d
	}
}

func WithSessionTimeout(d time.Duration) ConsumerOption {
	return func(cfg *kafka.ReaderConfig) {
		cfg.SessionTimeout = d
	}
}

func NewConsumer(brokers []string, groupID, topic string, opts ...ConsumerOption) *Consumer {
	cfg := kafka.ReaderConfig{
		Brokers:           brokers,
		GroupID:           groupID,
		Topic:             topic,
		HeartbeatInterval: defaultHeartbeatInterval,
		SessionTimeout:    defaultSessionTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Consumer{reader: kafka.NewReader(cfg)}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, kafka.Message) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		if err := handler(ctx, msg); err != nil {
			return err
		}
	}
}
