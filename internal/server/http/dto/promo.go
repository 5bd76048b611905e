package dto

import "time"

// CreatePromoRequest describes an admin promo code creation payload.
type CreatePromoRequest struct {
	Code            string     `json:"code"`
	DiscountPercent int        `json:"discount_percent"`
	MaxUses         int        `json:"max_uses,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

// PromoResponse describes a promo code with usage counters.
type PromoResponse struct {
	Code            string     `json:"code"`
	DiscountPercent int        `json:"discount_percent"`
	MaxUses         int        `json:"max_uses"`
	UsedCount       int        `json:"used_count"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	Active          bool       `json:"active"`
}
