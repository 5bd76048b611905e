package handlers

import (
	"context"

	"github.com/rbxmart/rbxmart/internal/domain/model"
	"github.com/rbxmart/rbxmart/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// CheckoutFacade runs the order creation flow.
type CheckoutFacade interface {
	Checkout(ctx context.Context, params usecase.CheckoutParams) (*usecase.CheckoutResult, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, userID int64, orderID string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	RefundOrder(ctx context.Context, orderID string, amount *int64) error
	ConfirmPaymentByOperation(ctx context.Context, operationID string) error
}

// CatalogFacade provides storefront catalog operations.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	RobuxPackages(ctx context.Context) ([]model.RobuxItem, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProductStock(ctx context.Context, productID string, stock int) error
	SetGamepassRate(ctx context.Context, rate float64) error
}

// PromoFacade provides promo code administration.
type PromoFacade interface {
	CreatePromo(ctx context.Context, promo *model.PromoCode) (*model.PromoCode, error)
	Promos(ctx context.Context) ([]model.PromoCode, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CheckoutFacade
	OrderFacade
	CatalogFacade
	PromoFacade
}
