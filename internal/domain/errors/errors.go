package errors

import "errors"

var (
	ErrAlreadyExists          = errors.New("already exists")
	ErrNotFound               = errors.New("not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrValidation             = errors.New("invalid request")
	ErrProductNotFound        = errors.New("product not found")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrInvalidRobuxItem       = errors.New("invalid robux item")
	ErrInactiveRobuxPackage   = errors.New("robux package is not available")
	ErrInvalidGamepassAmount  = errors.New("gamepass amount out of range")
	ErrOrderNotRefundable     = errors.New("order is not refundable")
	ErrPaymentGateway         = errors.New("payment gateway failure")
	ErrInvalidStatusChange    = errors.New("invalid order status change")
	ErrDuplicateRequest       = errors.New("duplicate request")
)
