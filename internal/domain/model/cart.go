package model

import (
	"fmt"
	"strconv"
	"strings"

	domainErrors "github.com/rbxmart/rbxmart/internal/domain/errors"
)

// ItemKind discriminates the three purchasable item families.
type ItemKind string

const (
	ItemKindRegular  ItemKind = "regular"
	ItemKindInstant  ItemKind = "instant"
	ItemKindGamepass ItemKind = "gamepass"
)

const (
	instantPrefix  = "robux-instant-"
	gamepassPrefix = "robux-gamepass-"

	// GamepassAmountMin and GamepassAmountMax bound a single gamepass purchase.
	GamepassAmountMin = 1
	GamepassAmountMax = 5000
)

// CartLine is a classified checkout line item. Product ids are parsed into
// an explicit kind exactly once at the API boundary; Amount is set only for
// Robux kinds.
type CartLine struct {
	Kind      ItemKind
	ProductID string
	Amount    int
	Quantity  int
}

// ParseCartLine classifies a raw product id and validates the quantity.
func ParseCartLine(productID string, quantity int) (CartLine, error) {
	if strings.TrimSpace(productID) == "" {
		return CartLine{}, fmt.Errorf("%w: empty product id", domainErrors.ErrValidation)
	}
	if quantity <= 0 {
		return CartLine{}, fmt.Errorf("%w: quantity must be positive", domainErrors.ErrValidation)
	}

	line := CartLine{Kind: ItemKindRegular, ProductID: productID, Quantity: quantity}

	switch {
	case strings.HasPrefix(productID, instantPrefix):
		amount, err := strconv.Atoi(productID[len(instantPrefix):])
		if err != nil || amount <= 0 {
			return CartLine{}, fmt.Errorf("%w: %s", domainErrors.ErrInvalidRobuxItem, productID)
		}
		line.Kind = ItemKindInstant
		line.Amount = amount
	case strings.HasPrefix(productID, gamepassPrefix):
		amount, err := strconv.Atoi(productID[len(gamepassPrefix):])
		if err != nil {
			return CartLine{}, fmt.Errorf("%w: %s", domainErrors.ErrInvalidRobuxItem, productID)
		}
		if amount < GamepassAmountMin || amount > GamepassAmountMax {
			return CartLine{}, fmt.Errorf("%w: %d", domainErrors.ErrInvalidGamepassAmount, amount)
		}
		line.Kind = ItemKindGamepass
		line.Amount = amount
	}

	return line, nil
}

// DisplayName returns the server-side item name snapshot for Robux lines.
// Regular lines take their name from the catalog row instead.
func (l CartLine) DisplayName() string {
	switch l.Kind {
	case ItemKindInstant:
		return fmt.Sprintf("%d Robux (instant)", l.Amount)
	case ItemKindGamepass:
		return fmt.Sprintf("%d Robux (gamepass)", l.Amount)
	default:
		return l.ProductID
	}
}
