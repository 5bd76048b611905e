package dto

import "time"

// CheckoutItem is a cart line in the checkout payload.
type CheckoutItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest describes the order creation payload.
type CheckoutRequest struct {
	RobloxUsername string         `json:"robloxUsername"`
	Items          []CheckoutItem `json:"items"`
	PromoCode      string         `json:"promoCode,omitempty"`
}

// CheckoutResponse is returned after a successful checkout. PaymentError is
// present when the order was created but the payment could not be initiated.
type CheckoutResponse struct {
	Success      bool          `json:"success"`
	Order        OrderResponse `json:"order"`
	PaymentURL   string        `json:"paymentUrl,omitempty"`
	PaymentError string        `json:"paymentError,omitempty"`
}

// OrderItemResponse describes a priced order position.
type OrderItemResponse struct {
	ProductID string `json:"productId,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// OrderResponse describes an order in API responses.
type OrderResponse struct {
	ID             string              `json:"id"`
	OrderNumber    string              `json:"orderNumber"`
	RobloxUsername string              `json:"robloxUsername"`
	Total          int64               `json:"total"`
	Status         string              `json:"status"`
	PaymentStatus  string              `json:"paymentStatus"`
	PaymentURL     string              `json:"paymentUrl,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	Items          []OrderItemResponse `json:"items,omitempty"`
}

// StatusUpdateRequest describes an admin fulfilment status change.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
