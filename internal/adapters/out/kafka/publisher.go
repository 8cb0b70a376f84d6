// Package kafka publishes inbox notifications to a Kafka topic for downstream delivery.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/pkg/resilience"

	"github.com/segmentio/kafka-go"
)

type Config struct {
	Brokers      []string
	Topic        string
	BatchSize    int
	BatchTimeout time.Duration
	RequiredAcks int // 0: no ack, 1: leader ack, -1: all replicas ack
}

func DefaultConfig(brokers []string, topic string) Config {
	return Config{
		Brokers:      brokers,
		Topic:        topic,
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: -1,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NotificationPublisher implements ports.NotificationPublisher. Messages are keyed by
// recipient so one user's notifications stay ordered within a partition.
type NotificationPublisher struct {
	writer  messageWriter
	breaker *resilience.CircuitBreaker
}

func NewNotificationPublisher(cfg Config, breaker *resilience.CircuitBreaker) *NotificationPublisher {
	return newNotificationPublisher(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    cfg.BatchSize,
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
		Async:        false,
	}, breaker)
}

func newNotificationPublisher(writer messageWriter, breaker *resilience.CircuitBreaker) *NotificationPublisher {
	return &NotificationPublisher{writer: writer, breaker: breaker}
}

type notificationMessage struct {
	ID         string    `json:"id"`
	Seq        int64     `json:"seq"`
	UserID     string    `json:"userId"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	EntityType string    `json:"entityType"`
	EntityID   *string   `json:"entityId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (p *NotificationPublisher) Publish(ctx context.Context, notifications []activity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(notifications))
	for _, n := range notifications {
		msg, err := encode(n)
		if err != nil {
			return err
		}
		messages = append(messages, msg)
	}

	write := func() error {
		if err := p.writer.WriteMessages(ctx, messages...); err != nil {
			return fmt.Errorf("failed to publish %d notifications: %w", len(messages), err)
		}
		return nil
	}
	if p.breaker == nil {
		return write()
	}
	return p.breaker.Execute(ctx, write)
}

func (p *NotificationPublisher) Close() error {
	return p.writer.Close()
}

func encode(n activity.Notification) (kafka.Message, error) {
	body := notificationMessage{
		ID:         n.ID().String(),
		Seq:        n.Seq(),
		UserID:     n.UserID().String(),
		Title:      n.Title(),
		Message:    n.Message(),
		Type:       string(n.Type()),
		EntityType: string(n.EntityType()),
		CreatedAt:  n.CreatedAt(),
	}
	if id := n.EntityID(); id != nil {
		s := id.String()
		body.EntityID = &s
	}

	data, err := json.Marshal(body)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal notification %s: %w", body.ID, err)
	}

	return kafka.Message{
		Key:   []byte(body.UserID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "notification-type", Value: []byte(body.Type)},
			{Key: "notification-seq", Value: []byte(strconv.FormatInt(body.Seq, 10))},
			{Key: "content-type", Value: []byte("application/json")},
		},
		Time: body.CreatedAt,
	}, nil
}
