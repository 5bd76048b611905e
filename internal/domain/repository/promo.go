package repository

import (
	"context"

	"github.com/rbxmart/rbxmart/internal/domain/model"
)

// PromoRepository manages discount codes. Consumption happens inside the
// checkout transaction, not through this interface.
type PromoRepository interface {
	Create(ctx context.Context, promo *model.PromoCode) (*model.PromoCode, error)
	GetByCode(ctx context.Context, code string) (*model.PromoCode, error)
	List(ctx context.Context) ([]model.PromoCode, error)
}
