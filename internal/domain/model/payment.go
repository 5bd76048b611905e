package model

// PaymentLink is the hosted checkout page issued by the payment gateway.
type PaymentLink struct {
	OperationID string
	URL         string
}

// PaymentState is the gateway-side view of an operation.
type PaymentState struct {
	OperationID string
	Status      PaymentStatus
}
