package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	domainErrors "github.com/rbxmart/rbxmart/internal/domain/errors"
	"github.com/rbxmart/rbxmart/internal/domain/model"
	"github.com/rbxmart/rbxmart/internal/domain/repository"
)

// CatalogUseCase serves the storefront catalog and its administration.
type CatalogUseCase struct {
	products repository.ProductRepository
	packages repository.RobuxItemRepository
	settings repository.SettingRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(
	products repository.ProductRepository,
	packages repository.RobuxItemRepository,
	settings repository.SettingRepository,
) *CatalogUseCase {
	return &CatalogUseCase{products: products, packages: packages, settings: settings}
}

// ListProducts returns active catalog products.
func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return u.products.ListActive(ctx)
}

// ListRobuxPackages returns purchasable fixed-price packages.
func (u *CatalogUseCase) ListRobuxPackages(ctx context.Context) ([]model.RobuxItem, error) {
	return u.packages.ListActive(ctx)
}

// CreateProduct adds a new catalog product.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.ID == "" || product.Name == "" {
		return nil, fmt.Errorf("%w: product id and name are required", domainErrors.ErrValidation)
	}
	if product.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domainErrors.ErrValidation)
	}
	if product.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", domainErrors.ErrValidation)
	}
	return u.products.Create(ctx, product)
}

// UpdateStock replaces the absolute stock value of a product.
func (u *CatalogUseCase) UpdateStock(ctx context.Context, productID string, stock int) error {
	if stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domainErrors.ErrValidation)
	}
	return u.products.UpdateStock(ctx, productID, stock)
}

// GamepassRate returns the configured gamepass price multiplier.
func (u *CatalogUseCase) GamepassRate(ctx context.Context) (float64, error) {
	value, err := u.settings.Get(ctx, model.SettingGamepassRate)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return model.DefaultGamepassRate, nil
		}
		return 0, err
	}
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil || rate <= 0 {
		return model.DefaultGamepassRate, nil
	}
	return rate, nil
}

// SetGamepassRate stores a new gamepass price multiplier.
func (u *CatalogUseCase) SetGamepassRate(ctx context.Context, rate float64) error {
	if rate <= 0 {
		return fmt.Errorf("%w: rate must be positive", domainErrors.ErrValidation)
	}
	return u.settings.Set(ctx, model.SettingGamepassRate, strconv.FormatFloat(rate, 'f', -1, 64))
}
