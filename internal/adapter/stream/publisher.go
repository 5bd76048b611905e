package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rbxmart/rbxmart/internal/domain/model"
)

// OrderEvent is the payload published for every order lifecycle change.
type OrderEvent struct {
	Type          string    `json:"type"`
	OrderID       string    `json:"order_id"`
	UserID        int64     `json:"user_id"`
	Total         int64     `json:"total"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher emits order lifecycle events. Publishing is best effort:
// implementations must not fail the calling operation.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, eventType string, order *model.Order)
	Close() error
}

// kafkaWriter is the subset of kafka.Writer used by the publisher.
type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes order events to a Kafka topic keyed by order id.
type KafkaPublisher struct {
	writer kafkaWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaPublisher{writer: writer, logger: logger}
}

// PublishOrderEvent serializes the event and writes it to the topic.
// Failures are logged and swallowed so checkout never depends on the broker.
func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, eventType string, order *model.Order) {
	event := OrderEvent{
		Type:          eventType,
		OrderID:       order.ID,
		UserID:        order.UserID,
		Total:         order.Total,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		OccurredAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal order event", slog.String("error", err.Error()))
		return
	}

	msg := kafka.Message{
		Key:   []byte(order.ID),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish order event",
			slog.String("type", eventType),
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()))
	}
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher discards events; used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderEvent(context.Context, string, *model.Order) {}

func (NopPublisher) Close() error { return nil }
