package dto

// RefundRequest describes an admin refund payload. Amount is optional; when
// omitted the full order total is refunded.
type RefundRequest struct {
	OrderID string `json:"orderId"`
	Amount  *int64 `json:"amount,omitempty"`
}

// WebhookRequest describes a payment gateway callback.
type WebhookRequest struct {
	OperationID string `json:"operationId"`
	Status      string `json:"status"`
}
