package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	EventContactSubmitted = "contact.submitted"
	EventContactReplied   = "contact.replied"
	EventRegistered       = "event.registered"
	EventDiscussionJoined = "discussion.joined"
)

// DomainEvent is a notification emitted after a successful write.
type DomainEvent struct {
	Type       string         `json:"type"`
	ResourceID uint64         `json:"resource_id"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Publisher fans domain events out to interested consumers. Publishing is
// best effort: callers log failures and never fail the request.
type Publisher interface {
	Publish(ctx context.Context, ev DomainEvent) error
	Close() error
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaProducer(cfg KafkaConfig) *KafkaProducer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &KafkaProducer{writer: w, topic: cfg.Topic}
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func (p *KafkaProducer) Publish(ctx context.Context, ev DomainEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", ev.Type, err)
	}
	msg := kafka.Message{
		Key:   []byte(MakeKeyFromID(ev.ResourceID)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s to %s: %w", ev.Type, p.topic, err)
	}
	return nil
}

func MakeKeyFromID(id uint64) string {
	return fmt.Sprintf("%d", id)
}

// LogPublisher is the fallback when no brokers are configured.
type LogPublisher struct {
	Log *slog.Logger
}

func (p LogPublisher) Publish(_ context.Context, ev DomainEvent) error {
	p.Log.Info("domain event", "type", ev.Type, "resource_id", ev.ResourceID, "payload", ev.Payload)
	return nil
}

func (p LogPublisher) Close() error { return nil }
