package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/rbxmart/rbxmart/internal/domain/errors"
	"github.com/rbxmart/rbxmart/internal/domain/model"
	"github.com/rbxmart/rbxmart/internal/server/http/dto"
)

// PromoHandler administers discount codes.
type PromoHandler struct {
	facade PromoFacade
}

// NewPromoHandler constructs PromoHandler.
func NewPromoHandler(facade PromoFacade) *PromoHandler {
	return &PromoHandler{facade: facade}
}

// Create handles POST /api/admin/promo.
func (h *PromoHandler) Create(c *gin.Context) {
	var req dto.CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	promo, err := h.facade.CreatePromo(c.Request.Context(), &model.PromoCode{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		MaxUses:         req.MaxUses,
		ExpiresAt:       req.ExpiresAt,
		Active:          true,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "promo code already exists"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toPromoResponse(*promo))
}

// List handles GET /api/admin/promo.
func (h *PromoHandler) List(c *gin.Context) {
	promos, err := h.facade.Promos(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.PromoResponse, 0, len(promos))
	for _, p := range promos {
		response = append(response, toPromoResponse(p))
	}

	c.JSON(http.StatusOK, response)
}

func toPromoResponse(promo model.PromoCode) dto.PromoResponse {
	return dto.PromoResponse{
		Code:            promo.Code,
		DiscountPercent: promo.DiscountPercent,
		MaxUses:         promo.MaxUses,
		UsedCount:       promo.UsedCount,
		ExpiresAt:       promo.ExpiresAt,
		Active:          promo.Active,
	}
}
