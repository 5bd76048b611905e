package model

import "time"

// Product is a catalog entity with a finite stock.
type Product struct {
	ID        string
	Name      string
	Price     int64
	Stock     int
	Category  string
	Rarity    string
	Active    bool
	CreatedAt time.Time
}

// RobuxItem is a fixed-price prepaid Robux package keyed by amount.
type RobuxItem struct {
	ID     int64
	Amount int
	Price  int64
	Active bool
}
