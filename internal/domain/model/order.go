package model

import (
	"strings"
	"time"
)

// OrderStatus describes order fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// PaymentStatus describes the state of the external payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order is a purchase created atomically with its items.
type Order struct {
	ID             string
	UserID         int64
	RobloxUsername string
	Total          int64
	Status         OrderStatus
	PaymentStatus  PaymentStatus
	OperationID    *string
	PaymentURL     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Items          []OrderItem
}

// OrderItem carries the unit price resolved at order time; it is never
// recomputed from the live catalog price.
type OrderItem struct {
	ID        int64
	OrderID   string
	ProductID string
	Name      string
	Quantity  int
	UnitPrice int64
}

const orderNumberLength = 8

// Number derives a human-readable order number from the tail of the order id.
func (o *Order) Number() string {
	raw := strings.ReplaceAll(o.ID, "-", "")
	if len(raw) > orderNumberLength {
		raw = raw[len(raw)-orderNumberLength:]
	}
	return strings.ToUpper(raw)
}

// CanTransitionTo reports whether a forward-only status change is allowed.
// Refunds go through the refund flow, not through status updates.
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	switch o.Status {
	case OrderStatusNew:
		return next == OrderStatusProcessing || next == OrderStatusCompleted
	case OrderStatusProcessing:
		return next == OrderStatusCompleted
	default:
		return false
	}
}
