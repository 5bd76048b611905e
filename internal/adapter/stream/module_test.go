package stream

import (
	"testing"

	"github.com/rbxmart/rbxmart/internal/config"
)

func TestNewPublisherWithoutBrokers(t *testing.T) {
	publisher := newPublisher(publisherParams{Config: &config.Config{}, Logger: testLogger()})
	if _, ok := publisher.(NopPublisher); !ok {
		t.Fatalf("expected nop publisher, got %T", publisher)
	}
}

func TestNewPublisherWithBrokers(t *testing.T) {
	cfg := &config.Config{KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "rbxmart.orders"}
	publisher := newPublisher(publisherParams{Config: cfg, Logger: testLogger()})
	kp, ok := publisher.(*KafkaPublisher)
	if !ok {
		t.Fatalf("expected kafka publisher, got %T", publisher)
	}
	t.Cleanup(func() { _ = kp.Close() })
}
