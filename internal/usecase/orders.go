package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/rbxmart/rbxmart/internal/domain/errors"
	"github.com/rbxmart/rbxmart/internal/domain/model"
	"github.com/rbxmart/rbxmart/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic after creation: listing,
// payment confirmation, fulfilment status changes and refunds.
type OrderUseCase struct {
	orders    repository.OrderRepository
	gateway   PaymentGateway
	publisher EventPublisher
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, gateway PaymentGateway, publisher EventPublisher) *OrderUseCase {
	return &OrderUseCase{orders: orders, gateway: gateway, publisher: publisher}
}

// ListByUser returns the user's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// GetForUser fetches an order, hiding other users' orders behind not-found.
func (u *OrderUseCase) GetForUser(ctx context.Context, userID int64, orderID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// UpdateStatus moves an order along the fulfilment pipeline. Only forward
// transitions are allowed.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidStatusChange, order.Status, status)
	}
	return u.orders.UpdateStatus(ctx, orderID, status)
}

// ConfirmPayment marks the order as paid and emits a payment event.
// Repeated confirmations are harmless.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, orderID string) error {
	if err := u.orders.MarkPaid(ctx, orderID); err != nil {
		return err
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	u.publisher.PublishOrderEvent(ctx, EventOrderPaymentUpdated, order)
	return nil
}

// ConfirmPaymentByOperation resolves the gateway operation to an order and
// confirms its payment.
func (u *OrderUseCase) ConfirmPaymentByOperation(ctx context.Context, operationID string) error {
	order, err := u.orders.GetByOperationID(ctx, operationID)
	if err != nil {
		return err
	}
	return u.ConfirmPayment(ctx, order.ID)
}

// Refund returns the money for a paid order through the gateway and marks
// the order refunded. A nil amount refunds the full order total; a partial
// amount must stay within (0, total].
func (u *OrderUseCase) Refund(ctx context.Context, orderID string, amount *int64) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.PaymentStatus != model.PaymentStatusPaid || order.OperationID == nil {
		return domainErrors.ErrOrderNotRefundable
	}

	refund := order.Total
	if amount != nil {
		if *amount <= 0 || *amount > order.Total {
			return fmt.Errorf("%w: refund amount must be within (0, %d]", domainErrors.ErrValidation, order.Total)
		}
		refund = *amount
	}

	if err := u.gateway.Refund(ctx, *order.OperationID, refund); err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrPaymentGateway, err)
	}

	if err := u.orders.MarkRefunded(ctx, orderID); err != nil {
		return err
	}

	order.Status = model.OrderStatusRefunded
	order.PaymentStatus = model.PaymentStatusRefunded
	u.publisher.PublishOrderEvent(ctx, EventOrderRefunded, order)
	return nil
}

// OrdersAwaitingPayment returns orders with an initiated but unsettled payment.
func (u *OrderUseCase) OrdersAwaitingPayment(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.SelectBatchAwaitingPayment(ctx, limit)
}

// PaymentState queries the gateway for the state of an operation.
func (u *OrderUseCase) PaymentState(ctx context.Context, operationID string) (*model.PaymentState, error) {
	return u.gateway.Status(ctx, operationID)
}
