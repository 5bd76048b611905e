package stream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rbxmart/rbxmart/internal/domain/model"
)

type writerStub struct {
	messages []kafka.Message
	writeErr error
	closed   bool
}

func (w *writerStub) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.writeErr != nil {
		return w.writeErr
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *writerStub) Close() error {
	w.closed = true
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestKafkaPublisherPublishOrderEvent(t *testing.T) {
	writer := &writerStub{}
	publisher := &KafkaPublisher{writer: writer, logger: testLogger()}

	order := &model.Order{
		ID:            "order-1",
		UserID:        7,
		Total:         2250,
		Status:        model.OrderStatusNew,
		PaymentStatus: model.PaymentStatusPending,
	}
	publisher.PublishOrderEvent(context.Background(), "order.created", order)

	if len(writer.messages) != 1 {
		t.Fatalf("expected one message, got %d", len(writer.messages))
	}
	msg := writer.messages[0]
	if string(msg.Key) != "order-1" {
		t.Fatalf("expected key order-1, got %q", msg.Key)
	}

	var event OrderEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		t.Fatalf("failed to unmarshal event: %v", err)
	}
	if event.Type != "order.created" || event.OrderID != "order-1" || event.UserID != 7 || event.Total != 2250 {
		t.Fatalf("unexpected event: %+v", event)
	}
	if event.Status != "new" || event.PaymentStatus != "pending" {
		t.Fatalf("unexpected statuses: %+v", event)
	}
	if time.Since(event.OccurredAt) > time.Minute {
		t.Fatalf("unexpected occurred_at: %v", event.OccurredAt)
	}
}

func TestKafkaPublisherSwallowsWriteErrors(t *testing.T) {
	writer := &writerStub{writeErr: errors.New("broker down")}
	publisher := &KafkaPublisher{writer: writer, logger: testLogger()}

	publisher.PublishOrderEvent(context.Background(), "order.created", &model.Order{ID: "order-1"})
}

func TestKafkaPublisherClose(t *testing.T) {
	writer := &writerStub{}
	publisher := &KafkaPublisher{writer: writer, logger: testLogger()}

	if err := publisher.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !writer.closed {
		t.Fatal("expected writer to be closed")
	}
}

func TestNopPublisher(t *testing.T) {
	var publisher Publisher = NopPublisher{}
	publisher.PublishOrderEvent(context.Background(), "order.created", &model.Order{ID: "order-1"})
	if err := publisher.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
