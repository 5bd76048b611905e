package repository

import (
	"context"

	"github.com/rbxmart/rbxmart/internal/domain/model"
)

// ProductRepository describes persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	ListActive(ctx context.Context) ([]model.Product, error)
	UpdateStock(ctx context.Context, id string, stock int) error
}

// RobuxItemRepository provides access to fixed-price Robux packages.
type RobuxItemRepository interface {
	GetByAmount(ctx context.Context, amount int) (*model.RobuxItem, error)
	ListActive(ctx context.Context) ([]model.RobuxItem, error)
}

// SettingRepository is a generic key/value store.
type SettingRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
