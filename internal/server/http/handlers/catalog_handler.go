package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/rbxmart/rbxmart/internal/domain/errors"
	"github.com/rbxmart/rbxmart/internal/domain/model"
	"github.com/rbxmart/rbxmart/internal/server/http/dto"
)

// CatalogHandler serves the storefront catalog and its administration.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Products handles GET /api/products.
func (h *CatalogHandler) Products(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Stock:    p.Stock,
			Category: p.Category,
			Rarity:   p.Rarity,
		})
	}

	c.JSON(http.StatusOK, response)
}

// RobuxPackages handles GET /api/robux/packages.
func (h *CatalogHandler) RobuxPackages(c *gin.Context) {
	packages, err := h.facade.RobuxPackages(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.RobuxPackageResponse, 0, len(packages))
	for _, p := range packages {
		response = append(response, dto.RobuxPackageResponse{Amount: p.Amount, Price: p.Price})
	}

	c.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/admin/products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), &model.Product{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
		Rarity:   req.Rarity,
		Active:   true,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "product already exists"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ProductResponse{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Stock:    product.Stock,
		Category: product.Category,
		Rarity:   product.Rarity,
	})
}

// UpdateStock handles PATCH /api/admin/products/:id/stock.
func (h *CatalogHandler) UpdateStock(c *gin.Context) {
	var req dto.StockUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	err := h.facade.UpdateProductStock(c.Request.Context(), c.Param("id"), req.Stock)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

// SetGamepassRate handles PUT /api/admin/settings/gamepass-rate.
func (h *CatalogHandler) SetGamepassRate(c *gin.Context) {
	var req dto.GamepassRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.facade.SetGamepassRate(c.Request.Context(), req.Rate); err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
