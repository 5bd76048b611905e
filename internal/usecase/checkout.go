package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainErrors "github.com/rbxmart/rbxmart/internal/domain/errors"
	"github.com/rbxmart/rbxmart/internal/domain/model"
	"github.com/rbxmart/rbxmart/internal/domain/repository"
)

// CheckoutLine is a raw cart position as submitted by the client.
type CheckoutLine struct {
	ProductID string
	Quantity  int
}

// CheckoutParams carries everything needed to create an order.
type CheckoutParams struct {
	UserID         int64
	RobloxUsername string
	Lines          []CheckoutLine
	PromoCode      string
	IdempotencyKey string
}

// CheckoutResult is the outcome of a checkout. The order is always persisted;
// PaymentErr is set when the gateway could not be reached, in which case
// PaymentURL is empty and payment can be retried later.
type CheckoutResult struct {
	Order      *model.Order
	PaymentURL string
	PaymentErr error
}

// CheckoutUseCase runs the order creation flow: validation, the pricing
// transaction and the post-commit payment initiation.
type CheckoutUseCase struct {
	orders    repository.OrderRepository
	gateway   PaymentGateway
	publisher EventPublisher
	guard     IdempotencyGuard
	logger    *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	orders repository.OrderRepository,
	gateway PaymentGateway,
	publisher EventPublisher,
	guard IdempotencyGuard,
	logger *slog.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		orders:    orders,
		gateway:   gateway,
		publisher: publisher,
		guard:     guard,
		logger:    logger,
	}
}

// Checkout creates an order. The pricing and writes happen atomically; the
// payment link is requested after commit and its failure does not undo the
// order.
func (u *CheckoutUseCase) Checkout(ctx context.Context, params CheckoutParams) (*CheckoutResult, error) {
	username := strings.TrimSpace(params.RobloxUsername)
	if !ValidateRobloxUsername(username) {
		return nil, fmt.Errorf("%w: invalid roblox username", domainErrors.ErrValidation)
	}
	if len(params.Lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", domainErrors.ErrValidation)
	}

	lines := make([]model.CartLine, 0, len(params.Lines))
	for _, raw := range params.Lines {
		line, err := model.ParseCartLine(raw.ProductID, raw.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if key := strings.TrimSpace(params.IdempotencyKey); key != "" {
		fresh, err := u.guard.Reserve(ctx, key)
		if err != nil {
			return nil, err
		}
		if !fresh {
			return nil, domainErrors.ErrDuplicateRequest
		}
	}

	order, err := u.orders.CreateOrder(ctx, repository.CreateOrderParams{
		UserID:         params.UserID,
		RobloxUsername: username,
		Lines:          lines,
		PromoCode:      params.PromoCode,
	})
	if err != nil {
		return nil, err
	}

	u.publisher.PublishOrderEvent(ctx, EventOrderCreated, order)

	result := &CheckoutResult{Order: order}
	u.initiatePayment(ctx, order, result)
	return result, nil
}

// initiatePayment requests a payment link for the committed order. Any
// failure here is recorded on the result and logged, never returned.
func (u *CheckoutUseCase) initiatePayment(ctx context.Context, order *model.Order, result *CheckoutResult) {
	link, err := u.gateway.CreatePayment(ctx, order.ID, order.Total, PaymentPurpose(order))
	if err != nil {
		u.logger.Error("payment initiation failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()))
		result.PaymentErr = err
		return
	}

	if err := u.orders.SetPaymentLink(ctx, order.ID, link.OperationID, link.URL); err != nil {
		u.logger.Error("persist payment link failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()))
		result.PaymentErr = err
		return
	}

	order.OperationID = &link.OperationID
	order.PaymentURL = &link.URL
	result.PaymentURL = link.URL
}
