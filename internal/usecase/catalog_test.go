package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/rbxmart/rbxmart/internal/domain/errors"
	"github.com/rbxmart/rbxmart/internal/domain/model"
	testhelpers "github.com/rbxmart/rbxmart/internal/test"
	"github.com/rbxmart/rbxmart/internal/usecase"
)

func newCatalogUseCase() (*usecase.CatalogUseCase, *testhelpers.ProductRepositoryStub, *testhelpers.SettingRepositoryStub) {
	products := &testhelpers.ProductRepositoryStub{}
	settings := &testhelpers.SettingRepositoryStub{}
	packages := &testhelpers.RobuxItemRepositoryStub{Items: []model.RobuxItem{
		{ID: 1, Amount: 400, Price: 1100, Active: true},
		{ID: 2, Amount: 800, Price: 2000, Active: false},
	}}
	return usecase.NewCatalogUseCase(products, packages, settings), products, settings
}

func TestCatalogUseCaseListRobuxPackages(t *testing.T) {
	uc, _, _ := newCatalogUseCase()
	packages, err := uc.ListRobuxPackages(context.Background())
	if err != nil || len(packages) != 1 || packages[0].Amount != 400 {
		t.Fatalf("unexpected packages: %v err=%v", packages, err)
	}
}

func TestCatalogUseCaseCreateProduct(t *testing.T) {
	uc, products, _ := newCatalogUseCase()
	ctx := context.Background()

	if _, err := uc.CreateProduct(ctx, &model.Product{Name: "Sword", Price: 100}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing id, got %v", err)
	}
	if _, err := uc.CreateProduct(ctx, &model.Product{ID: "sword", Name: "Sword", Price: 0}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected ErrValidation for price, got %v", err)
	}
	if _, err := uc.CreateProduct(ctx, &model.Product{ID: "sword", Name: "Sword", Price: 100, Stock: -1}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected ErrValidation for stock, got %v", err)
	}

	product, err := uc.CreateProduct(ctx, &model.Product{ID: "sword", Name: "Sword", Price: 100, Stock: 5})
	if err != nil || product.ID != "sword" {
		t.Fatalf("unexpected result: %+v err=%v", product, err)
	}
	if len(products.Products) != 1 {
		t.Fatalf("expected stored product")
	}
}

func TestCatalogUseCaseUpdateStock(t *testing.T) {
	uc, products, _ := newCatalogUseCase()
	ctx := context.Background()

	if err := uc.UpdateStock(ctx, "sword", -1); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err := uc.UpdateStock(ctx, "sword", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products.StockCalls["sword"] != 10 {
		t.Fatalf("unexpected stock calls: %v", products.StockCalls)
	}
}

func TestCatalogUseCaseGamepassRate(t *testing.T) {
	uc, _, settings := newCatalogUseCase()
	ctx := context.Background()

	// Unset falls back to the default.
	rate, err := uc.GamepassRate(ctx)
	if err != nil || rate != model.DefaultGamepassRate {
		t.Fatalf("unexpected rate: %v err=%v", rate, err)
	}

	if err := uc.SetGamepassRate(ctx, 0); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err := uc.SetGamepassRate(ctx, 0.85); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rate, err = uc.GamepassRate(ctx)
	if err != nil || rate != 0.85 {
		t.Fatalf("unexpected rate: %v err=%v", rate, err)
	}

	// Garbage stored value falls back to the default.
	settings.Values[model.SettingGamepassRate] = "broken"
	rate, err = uc.GamepassRate(ctx)
	if err != nil || rate != model.DefaultGamepassRate {
		t.Fatalf("unexpected rate: %v err=%v", rate, err)
	}
}
