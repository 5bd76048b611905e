package app

import (
	"context"

	"github.com/rbxmart/rbxmart/internal/domain/model"
	"github.com/rbxmart/rbxmart/internal/usecase"
)

// StoreFacade exposes the application use cases as one surface for the HTTP
// handlers and the payment watcher.
type StoreFacade struct {
	auth     *usecase.AuthUseCase
	checkout *usecase.CheckoutUseCase
	orders   *usecase.OrderUseCase
	catalog  *usecase.CatalogUseCase
	promos   *usecase.PromoUseCase
}

// NewStoreFacade constructs StoreFacade.
func NewStoreFacade(
	auth *usecase.AuthUseCase,
	checkout *usecase.CheckoutUseCase,
	orders *usecase.OrderUseCase,
	catalog *usecase.CatalogUseCase,
	promos *usecase.PromoUseCase,
) *StoreFacade {
	return &StoreFacade{auth: auth, checkout: checkout, orders: orders, catalog: catalog, promos: promos}
}

func (f *StoreFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *StoreFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StoreFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	return f.auth.IsAdmin(ctx, userID)
}

func (f *StoreFacade) Checkout(ctx context.Context, params usecase.CheckoutParams) (*usecase.CheckoutResult, error) {
	return f.checkout.Checkout(ctx, params)
}

func (f *StoreFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StoreFacade) Order(ctx context.Context, userID int64, orderID string) (*model.Order, error) {
	return f.orders.GetForUser(ctx, userID, orderID)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *StoreFacade) RefundOrder(ctx context.Context, orderID string, amount *int64) error {
	return f.orders.Refund(ctx, orderID, amount)
}

func (f *StoreFacade) ConfirmPaymentByOperation(ctx context.Context, operationID string) error {
	return f.orders.ConfirmPaymentByOperation(ctx, operationID)
}

func (f *StoreFacade) ConfirmPayment(ctx context.Context, orderID string) error {
	return f.orders.ConfirmPayment(ctx, orderID)
}

func (f *StoreFacade) OrdersAwaitingPayment(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.OrdersAwaitingPayment(ctx, limit)
}

func (f *StoreFacade) PaymentState(ctx context.Context, operationID string) (*model.PaymentState, error) {
	return f.orders.PaymentState(ctx, operationID)
}

func (f *StoreFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.ListProducts(ctx)
}

func (f *StoreFacade) RobuxPackages(ctx context.Context) ([]model.RobuxItem, error) {
	return f.catalog.ListRobuxPackages(ctx)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, product)
}

func (f *StoreFacade) UpdateProductStock(ctx context.Context, productID string, stock int) error {
	return f.catalog.UpdateStock(ctx, productID, stock)
}

func (f *StoreFacade) SetGamepassRate(ctx context.Context, rate float64) error {
	return f.catalog.SetGamepassRate(ctx, rate)
}

func (f *StoreFacade) CreatePromo(ctx context.Context, promo *model.PromoCode) (*model.PromoCode, error) {
	return f.promos.Create(ctx, promo)
}

func (f *StoreFacade) Promos(ctx context.Context) ([]model.PromoCode, error) {
	return f.promos.List(ctx)
}
