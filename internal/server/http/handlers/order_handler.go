package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/rbxmart/rbxmart/internal/domain/errors"
	"github.com/rbxmart/rbxmart/internal/domain/model"
	"github.com/rbxmart/rbxmart/internal/server/http/dto"
	"github.com/rbxmart/rbxmart/internal/usecase"
)

// checkoutFailedMessage is the generic storefront error shown when order
// creation fails for a reason the client cannot fix.
const checkoutFailedMessage = "Ошибка при создании заказа"

// idempotencyKeyHeader carries the client-chosen checkout deduplication key.
const idempotencyKeyHeader = "Idempotency-Key"

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade StoreFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade StoreFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/orders.
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	lines := make([]usecase.CheckoutLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, usecase.CheckoutLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	result, err := h.facade.Checkout(c.Request.Context(), usecase.CheckoutParams{
		UserID:         userID,
		RobloxUsername: req.RobloxUsername,
		Lines:          lines,
		PromoCode:      req.PromoCode,
		IdempotencyKey: c.GetHeader(idempotencyKeyHeader),
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domainErrors.ErrDuplicateRequest):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "duplicate request"})
		case errors.Is(err, domainErrors.ErrInvalidRobuxItem),
			errors.Is(err, domainErrors.ErrInvalidGamepassAmount),
			errors.Is(err, domainErrors.ErrInactiveRobuxPackage),
			errors.Is(err, domainErrors.ErrProductNotFound),
			errors.Is(err, domainErrors.ErrInsufficientStock):
			// Pricing failures abort the transaction; the message itself is
			// surfaced so the storefront can show what went wrong.
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: checkoutFailedMessage})
		}
		return
	}

	response := dto.CheckoutResponse{
		Success:    true,
		Order:      toOrderResponse(*result.Order),
		PaymentURL: result.PaymentURL,
	}
	if result.PaymentErr != nil {
		response.PaymentError = "payment initiation failed, try again later"
	}

	c.JSON(http.StatusOK, response)
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	orders, err := h.facade.Orders(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	userID := CurrentUserID(c)
	order, err := h.facade.Order(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatus handles PATCH /api/admin/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidStatusChange):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	response := dto.OrderResponse{
		ID:             order.ID,
		OrderNumber:    order.Number(),
		RobloxUsername: order.RobloxUsername,
		Total:          order.Total,
		Status:         string(order.Status),
		PaymentStatus:  string(order.PaymentStatus),
		CreatedAt:      order.CreatedAt,
	}
	if order.PaymentURL != nil {
		response.PaymentURL = *order.PaymentURL
	}
	for _, item := range order.Items {
		response.Items = append(response.Items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return response
}
