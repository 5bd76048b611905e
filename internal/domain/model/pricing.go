package model

import "math"

// DefaultGamepassRate is used when the settings store has no explicit rate.
const DefaultGamepassRate = 0.9

// SettingGamepassRate is the settings key holding the gamepass price multiplier.
const SettingGamepassRate = "gamepass_rate"

// GamepassPrice computes the unit price of a gamepass Robux amount.
func GamepassPrice(amount int, rate float64) int64 {
	return int64(math.Round(float64(amount) * rate))
}

// PromoDiscount computes the absolute discount for a subtotal.
func PromoDiscount(subtotal int64, percent int) int64 {
	return int64(math.Round(float64(subtotal) * float64(percent) / 100))
}

// FinalTotal applies a discount to a subtotal, clamping at zero.
func FinalTotal(subtotal, discount int64) int64 {
	if discount >= subtotal {
		return 0
	}
	return subtotal - discount
}
