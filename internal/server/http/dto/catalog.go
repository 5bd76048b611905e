package dto

// ProductResponse describes a catalog product.
type ProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	Category string `json:"category,omitempty"`
	Rarity   string `json:"rarity,omitempty"`
}

// RobuxPackageResponse describes a fixed-price Robux package.
type RobuxPackageResponse struct {
	Amount int   `json:"amount"`
	Price  int64 `json:"price"`
}

// CreateProductRequest describes an admin product creation payload.
type CreateProductRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	Category string `json:"category,omitempty"`
	Rarity   string `json:"rarity,omitempty"`
}

// StockUpdateRequest describes an absolute stock replacement.
type StockUpdateRequest struct {
	Stock int `json:"stock"`
}

// GamepassRateRequest describes the gamepass rate setting payload.
type GamepassRateRequest struct {
	Rate float64 `json:"rate"`
}
