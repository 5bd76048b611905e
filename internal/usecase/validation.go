package usecase

import (
	"strings"

	"github.com/rbxmart/rbxmart/internal/domain/model"
)

const (
	robloxUsernameMinLength = 3
	robloxUsernameMaxLength = 20

	paymentPurposeMaxLength = 140
	paymentPurposeMaxItems  = 3
)

// ValidateRobloxUsername checks recipient account name format: letters,
// digits and underscores, within platform length limits.
func ValidateRobloxUsername(username string) bool {
	if len(username) < robloxUsernameMinLength || len(username) > robloxUsernameMaxLength {
		return false
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

// PaymentPurpose builds a short human-readable description for the payment
// page: order number plus the first few item names.
func PaymentPurpose(order *model.Order) string {
	names := make([]string, 0, paymentPurposeMaxItems)
	for _, item := range order.Items {
		if len(names) == paymentPurposeMaxItems {
			break
		}
		names = append(names, item.Name)
	}

	purpose := "Order " + order.Number()
	if len(names) > 0 {
		purpose += ": " + strings.Join(names, ", ")
	}

	runes := []rune(purpose)
	if len(runes) > paymentPurposeMaxLength {
		purpose = string(runes[:paymentPurposeMaxLength])
	}
	return purpose
}
