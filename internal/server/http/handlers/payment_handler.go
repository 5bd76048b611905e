package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/rbxmart/rbxmart/internal/domain/errors"
	"github.com/rbxmart/rbxmart/internal/domain/model"
	"github.com/rbxmart/rbxmart/internal/server/http/dto"
)

// webhookSecretHeader authenticates gateway callbacks.
const webhookSecretHeader = "X-Webhook-Secret"

// PaymentHandler manages gateway callbacks and refunds.
type PaymentHandler struct {
	facade        OrderFacade
	webhookSecret string
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade OrderFacade, webhookSecret string) *PaymentHandler {
	return &PaymentHandler{facade: facade, webhookSecret: webhookSecret}
}

// Webhook handles POST /api/payment/webhook.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	provided := c.GetHeader(webhookSecretHeader)
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.webhookSecret)) != 1 {
		c.Status(http.StatusUnauthorized)
		return
	}

	var req dto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OperationID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	// Only the paid transition is driven by the gateway; other states are
	// acknowledged without action.
	if model.PaymentStatus(req.Status) != model.PaymentStatusPaid {
		c.Status(http.StatusOK)
		return
	}

	if err := h.facade.ConfirmPaymentByOperation(c.Request.Context(), req.OperationID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

// Refund handles POST /api/payment/refund.
func (h *PaymentHandler) Refund(c *gin.Context) {
	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "orderId is required"})
		return
	}

	err := h.facade.RefundOrder(c.Request.Context(), req.OrderID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domainErrors.ErrOrderNotRefundable):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "order is not refundable"})
		case errors.Is(err, domainErrors.ErrPaymentGateway):
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "refund failed"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "refund failed"})
		}
		return
	}

	c.Status(http.StatusOK)
}
