package usecase

import (
	"context"

	"github.com/rbxmart/rbxmart/internal/domain/model"
)

// Event types emitted to the order stream.
const (
	EventOrderCreated        = "order.created"
	EventOrderPaymentUpdated = "order.payment_updated"
	EventOrderRefunded       = "order.refunded"
)

// PaymentGateway abstracts the external payment provider.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, orderID string, amount int64, purpose string) (*model.PaymentLink, error)
	Status(ctx context.Context, operationID string) (*model.PaymentState, error)
	Refund(ctx context.Context, operationID string, amount int64) error
}

// EventPublisher emits order lifecycle events, best effort.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, eventType string, order *model.Order)
}

// IdempotencyGuard reserves request idempotency keys.
type IdempotencyGuard interface {
	Reserve(ctx context.Context, key string) (bool, error)
}
