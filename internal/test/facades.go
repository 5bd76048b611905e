package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rbxmart/rbxmart/internal/domain/model"
	"github.com/rbxmart/rbxmart/internal/usecase"
)

// CheckoutFacadeStub simulates the checkout flow for HTTP layer tests.
type CheckoutFacadeStub struct {
	CheckoutFn func(context.Context, usecase.CheckoutParams) (*usecase.CheckoutResult, error)
	Calls      []usecase.CheckoutParams
}

// Checkout records the call and delegates to the override when present.
func (s *CheckoutFacadeStub) Checkout(ctx context.Context, params usecase.CheckoutParams) (*usecase.CheckoutResult, error) {
	s.Calls = append(s.Calls, params)
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, params)
	}
	order := &model.Order{ID: "order-1", UserID: params.UserID, RobloxUsername: params.RobloxUsername, Total: 100}
	return &usecase.CheckoutResult{Order: order, PaymentURL: "https://pay.example/1"}, nil
}

// StatusUpdateCall stores information about UpdateOrderStatus invocations.
type StatusUpdateCall struct {
	OrderID string
	Status  model.OrderStatus
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn       func(context.Context, int64) ([]model.Order, error)
	OrderFn        func(context.Context, int64, string) (*model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) error
	RefundFn       func(context.Context, string, *int64) error
	ConfirmOpFn    func(context.Context, string) error

	StatusUpdates []StatusUpdateCall
	Refunded      []RefundCall
	ConfirmedOps  []string
}

// RefundCall stores a RefundOrder invocation. Amount is nil for full refunds.
type RefundCall struct {
	OrderID string
	Amount  *int64
}

// Orders returns predefined orders for given user.
func (s *OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: "order-1", UserID: userID}}, nil
}

// Order returns a single order or delegates to override.
func (s *OrderFacadeStub) Order(ctx context.Context, userID int64, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID}, nil
}

// UpdateOrderStatus records the requested transition.
func (s *OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.StatusUpdates = append(s.StatusUpdates, StatusUpdateCall{OrderID: orderID, Status: status})
	return nil
}

// RefundOrder records refunded order identifiers and amounts.
func (s *OrderFacadeStub) RefundOrder(ctx context.Context, orderID string, amount *int64) error {
	if s.RefundFn != nil {
		return s.RefundFn(ctx, orderID, amount)
	}
	s.Refunded = append(s.Refunded, RefundCall{OrderID: orderID, Amount: amount})
	return nil
}

// ConfirmPaymentByOperation records confirmed operations.
func (s *OrderFacadeStub) ConfirmPaymentByOperation(ctx context.Context, operationID string) error {
	if s.ConfirmOpFn != nil {
		return s.ConfirmOpFn(ctx, operationID)
	}
	s.ConfirmedOps = append(s.ConfirmedOps, operationID)
	return nil
}

// CatalogFacadeStub simulates catalog operations.
type CatalogFacadeStub struct {
	ProductsFn      func(context.Context) ([]model.Product, error)
	PackagesFn      func(context.Context) ([]model.RobuxItem, error)
	CreateProductFn func(context.Context, *model.Product) (*model.Product, error)
	UpdateStockFn   func(context.Context, string, int) error
	SetRateFn       func(context.Context, float64) error
}

// Products returns stored catalog or default data.
func (s *CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: "sword", Name: "Sword", Price: 100, Stock: 5, Active: true}}, nil
}

// RobuxPackages returns stored packages or default data.
func (s *CatalogFacadeStub) RobuxPackages(ctx context.Context) ([]model.RobuxItem, error) {
	if s.PackagesFn != nil {
		return s.PackagesFn(ctx)
	}
	return []model.RobuxItem{{ID: 1, Amount: 400, Price: 450, Active: true}}, nil
}

// CreateProduct delegates to override or echoes the product.
func (s *CatalogFacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	return product, nil
}

// UpdateProductStock executes configured handler.
func (s *CatalogFacadeStub) UpdateProductStock(ctx context.Context, productID string, stock int) error {
	if s.UpdateStockFn != nil {
		return s.UpdateStockFn(ctx, productID, stock)
	}
	return nil
}

// SetGamepassRate executes configured handler.
func (s *CatalogFacadeStub) SetGamepassRate(ctx context.Context, rate float64) error {
	if s.SetRateFn != nil {
		return s.SetRateFn(ctx, rate)
	}
	return nil
}

// PromoFacadeStub simulates promo administration.
type PromoFacadeStub struct {
	CreateFn func(context.Context, *model.PromoCode) (*model.PromoCode, error)
	ListFn   func(context.Context) ([]model.PromoCode, error)
}

// CreatePromo delegates to override or echoes the promo.
func (s *PromoFacadeStub) CreatePromo(ctx context.Context, promo *model.PromoCode) (*model.PromoCode, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, promo)
	}
	return promo, nil
}

// Promos returns configured promo codes.
func (s *PromoFacadeStub) Promos(ctx context.Context) ([]model.PromoCode, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.PromoCode{{Code: "SAVE20", DiscountPercent: 20, Active: true}}, nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	CheckoutFacadeStub
	OrderFacadeStub
	CatalogFacadeStub
	PromoFacadeStub
}

// PaymentConfirmCall stores a watcher confirmation invocation.
type PaymentConfirmCall struct {
	OrderID string
}

// WatcherFacadeStub mimics watcher interactions with the store facade.
type WatcherFacadeStub struct {
	Batches   [][]model.Order
	BatchFn   func(context.Context, int) ([]model.Order, error)
	StateFn   func(context.Context, string) (*model.PaymentState, error)
	ConfirmFn func(context.Context, string) error

	Confirmed      []PaymentConfirmCall
	mu             sync.Mutex
	batchCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WatcherFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WatcherFacadeStub) Unlock() { s.mu.Unlock() }

// OrdersAwaitingPayment returns batches from configured queue.
func (s *WatcherFacadeStub) OrdersAwaitingPayment(ctx context.Context, limit int) ([]model.Order, error) {
	if s.BatchFn != nil {
		return s.BatchFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.batchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// PaymentState returns configured gateway state.
func (s *WatcherFacadeStub) PaymentState(ctx context.Context, operationID string) (*model.PaymentState, error) {
	if s.StateFn != nil {
		return s.StateFn(ctx, operationID)
	}
	return &model.PaymentState{OperationID: operationID, Status: model.PaymentStatusPaid}, nil
}

// ConfirmPayment records confirmation requests.
func (s *WatcherFacadeStub) ConfirmPayment(ctx context.Context, orderID string) error {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Confirmed = append(s.Confirmed, PaymentConfirmCall{OrderID: orderID})
	return nil
}

// PaymentGatewayStub simulates the external payment provider.
type PaymentGatewayStub struct {
	CreateFn func(context.Context, string, int64, string) (*model.PaymentLink, error)
	StatusFn func(context.Context, string) (*model.PaymentState, error)
	RefundFn func(context.Context, string, int64) error

	Created       []string
	Refunds       []string
	RefundAmounts []int64
}

// CreatePayment returns a deterministic payment link.
func (s *PaymentGatewayStub) CreatePayment(ctx context.Context, orderID string, amount int64, purpose string) (*model.PaymentLink, error) {
	s.Created = append(s.Created, orderID)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, orderID, amount, purpose)
	}
	return &model.PaymentLink{OperationID: "op-" + orderID, URL: "https://pay.example/" + orderID}, nil
}

// Status returns configured operation state.
func (s *PaymentGatewayStub) Status(ctx context.Context, operationID string) (*model.PaymentState, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, operationID)
	}
	return &model.PaymentState{OperationID: operationID, Status: model.PaymentStatusPending}, nil
}

// Refund records refund invocations.
func (s *PaymentGatewayStub) Refund(ctx context.Context, operationID string, amount int64) error {
	s.Refunds = append(s.Refunds, operationID)
	s.RefundAmounts = append(s.RefundAmounts, amount)
	if s.RefundFn != nil {
		return s.RefundFn(ctx, operationID, amount)
	}
	return nil
}

// PublishedEvent stores a recorded order event.
type PublishedEvent struct {
	Type    string
	OrderID string
}

// PublisherRecorder captures published order events.
type PublisherRecorder struct {
	mu     sync.Mutex
	Events []PublishedEvent
}

// PublishOrderEvent records the event.
func (p *PublisherRecorder) PublishOrderEvent(ctx context.Context, eventType string, order *model.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, PublishedEvent{Type: eventType, OrderID: order.ID})
}

// GuardStub controls idempotency key reservation outcomes.
type GuardStub struct {
	Fresh     bool
	Err       error
	ReserveFn func(context.Context, string) (bool, error)
	Keys      []string
}

// Reserve records the key and returns the configured outcome.
func (g *GuardStub) Reserve(ctx context.Context, key string) (bool, error) {
	g.Keys = append(g.Keys, key)
	if g.ReserveFn != nil {
		return g.ReserveFn(ctx, key)
	}
	if g.Err != nil {
		return false, g.Err
	}
	return g.Fresh, nil
}
