package repository

import (
	"context"

	"github.com/rbxmart/rbxmart/internal/domain/model"
)

// CreateOrderParams is the validated input of the checkout transaction.
type CreateOrderParams struct {
	UserID         int64
	RobloxUsername string
	Lines          []model.CartLine
	PromoCode      string
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// CreateOrder prices the cart, consumes the promo code and persists the
	// order with its item snapshots in a single transaction.
	CreateOrder(ctx context.Context, params CreateOrderParams) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetByOperationID(ctx context.Context, operationID string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	SetPaymentLink(ctx context.Context, orderID, operationID, paymentURL string) error
	SelectBatchAwaitingPayment(ctx context.Context, limit int) ([]model.Order, error)
	MarkPaid(ctx context.Context, orderID string) error
	MarkRefunded(ctx context.Context, orderID string) error
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}
