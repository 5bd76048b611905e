package usecase

import (
	"strings"
	"testing"

	"github.com/rbxmart/rbxmart/internal/domain/model"
)

func TestValidateRobloxUsername(t *testing.T) {
	cases := []struct {
		username string
		want     bool
	}{
		{"Builder_1", true},
		{"abc", true},
		{"aB9", true},
		{strings.Repeat("a", 20), true},
		{"ab", false},
		{strings.Repeat("a", 21), false},
		{"has space", false},
		{"bad!char", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidateRobloxUsername(tc.username); got != tc.want {
			t.Fatalf("%q: expected %v, got %v", tc.username, tc.want, got)
		}
	}
}

func TestPaymentPurpose(t *testing.T) {
	order := &model.Order{
		ID: "11111111-2222-3333-4444-555555555abc",
		Items: []model.OrderItem{
			{Name: "Sword"},
			{Name: "400 Robux (instant)"},
			{Name: "Shield"},
			{Name: "Ignored"},
		},
	}
	purpose := PaymentPurpose(order)
	if !strings.HasPrefix(purpose, "Order 55555ABC: ") {
		t.Fatalf("unexpected prefix: %q", purpose)
	}
	if strings.Contains(purpose, "Ignored") {
		t.Fatalf("expected at most three item names: %q", purpose)
	}
	if !strings.Contains(purpose, "Shield") {
		t.Fatalf("expected third item name: %q", purpose)
	}

	empty := &model.Order{ID: "abc"}
	if got := PaymentPurpose(empty); got != "Order ABC" {
		t.Fatalf("unexpected purpose: %q", got)
	}

	long := &model.Order{ID: "abc", Items: []model.OrderItem{{Name: strings.Repeat("x", 300)}}}
	if got := PaymentPurpose(long); len([]rune(got)) != 140 {
		t.Fatalf("expected truncation to 140 runes, got %d", len([]rune(got)))
	}
}
