package model

import (
	"strings"
	"time"
)

// PromoCode is a discount token with a usage cap and optional expiry.
// MaxUses of zero means unlimited.
type PromoCode struct {
	ID              int64
	Code            string
	DiscountPercent int
	MaxUses         int
	UsedCount       int
	ExpiresAt       *time.Time
	Active          bool
	CreatedAt       time.Time
}

// NormalizePromoCode applies the canonical form used for storage and lookup.
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Usable reports whether the code can still be redeemed at the given moment.
func (p *PromoCode) Usable(now time.Time) bool {
	if !p.Active {
		return false
	}
	if p.ExpiresAt != nil && p.ExpiresAt.Before(now) {
		return false
	}
	if p.MaxUses > 0 && p.UsedCount >= p.MaxUses {
		return false
	}
	return true
}
