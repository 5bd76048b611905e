package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/rbxmart/rbxmart/internal/domain/errors"
	"github.com/rbxmart/rbxmart/internal/domain/model"
	"github.com/rbxmart/rbxmart/internal/domain/repository"
)

// PromoUseCase administers discount codes.
type PromoUseCase struct {
	promos repository.PromoRepository
}

// NewPromoUseCase constructs PromoUseCase.
func NewPromoUseCase(promos repository.PromoRepository) *PromoUseCase {
	return &PromoUseCase{promos: promos}
}

// Create registers a new promo code.
func (u *PromoUseCase) Create(ctx context.Context, promo *model.PromoCode) (*model.PromoCode, error) {
	if model.NormalizePromoCode(promo.Code) == "" {
		return nil, fmt.Errorf("%w: code is required", domainErrors.ErrValidation)
	}
	if promo.DiscountPercent < 1 || promo.DiscountPercent > 100 {
		return nil, fmt.Errorf("%w: discount percent must be within 1..100", domainErrors.ErrValidation)
	}
	if promo.MaxUses < 0 {
		return nil, fmt.Errorf("%w: max uses must not be negative", domainErrors.ErrValidation)
	}
	return u.promos.Create(ctx, promo)
}

// List returns all promo codes with usage counters.
func (u *PromoUseCase) List(ctx context.Context) ([]model.PromoCode, error) {
	return u.promos.List(ctx)
}
