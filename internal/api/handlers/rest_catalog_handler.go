package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"serviciosmarket/core/internal/api/middleware"
	"serviciosmarket/core/internal/models"
	"serviciosmarket/core/internal/money"
	"serviciosmarket/core/internal/services"
	"serviciosmarket/core/internal/store"
)

// RestCatalogHandler handles REST requests for the supply catalog and packs.
type RestCatalogHandler struct {
	catalogService services.ICatalogService
}

// NewRestCatalogHandler creates a new RestCatalogHandler.
func NewRestCatalogHandler(catalogService services.ICatalogService) *RestCatalogHandler {
	return &RestCatalogHandler{catalogService: catalogService}
}

type addSupplyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Unit        string  `json:"unit" binding:"required"`
	Stock       int     `json:"stock"`
	Price       float64 `json:"price" binding:"required"`
	Currency    string  `json:"currency" binding:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

type updateSupplyRequest struct {
	Name        *string  `json:"name"`
	Unit        *string  `json:"unit"`
	Stock       *int     `json:"stock"`
	Price       *float64 `json:"price"`
	Currency    *string  `json:"currency"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
}

type buildPackRequest struct {
	Name        string         `json:"name" binding:"required"`
	SupplyIDs   []string       `json:"supplyIds" binding:"required"`
	Quantities  map[string]int `json:"quantities"`
	DiscountPct float64        `json:"discountPct"`
}

// ListSupplies handles GET /v1/supplies
func (h *RestCatalogHandler) ListSupplies(c *gin.Context) {
	supplies, err := h.catalogService.ListSupplies(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list supplies"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": supplies})
}

// GetSupply handles GET /v1/supplies/:id
func (h *RestCatalogHandler) GetSupply(c *gin.Context) {
	supply, err := h.catalogService.GetSupply(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrSupplyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supply not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve supply"})
		return
	}
	c.JSON(http.StatusOK, supply)
}

// AddSupply handles POST /v1/supplies
func (h *RestCatalogHandler) AddSupply(c *gin.Context) {
	var req addSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supply payload"})
		return
	}

	created, err := h.catalogService.AddSupply(c.Request.Context(), models.Supply{
		Name:        req.Name,
		Unit:        req.Unit,
		Stock:       req.Stock,
		Price:       req.Price,
		Currency:    req.Currency,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add supply"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateSupply handles PATCH /v1/supplies/:id
func (h *RestCatalogHandler) UpdateSupply(c *gin.Context) {
	var req updateSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supply payload"})
		return
	}

	updated, err := h.catalogService.UpdateSupply(c.Request.Context(), c.Param("id"), store.SupplyPatch{
		Name:        req.Name,
		Unit:        req.Unit,
		Stock:       req.Stock,
		Price:       req.Price,
		Currency:    req.Currency,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, services.ErrSupplyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supply not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supply"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RemoveSupply handles DELETE /v1/supplies/:id
func (h *RestCatalogHandler) RemoveSupply(c *gin.Context) {
	if err := h.catalogService.RemoveSupply(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrSupplyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supply not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove supply"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPacks handles GET /v1/packs
func (h *RestCatalogHandler) ListPacks(c *gin.Context) {
	packs, err := h.catalogService.ListPacks(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list packs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": packs})
}

// BuildPack handles POST /v1/packs
func (h *RestCatalogHandler) BuildPack(c *gin.Context) {
	var req buildPackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pack payload"})
		return
	}

	created, err := h.catalogService.BuildPack(c.Request.Context(), services.PackInput{
		Name:        req.Name,
		SupplyIDs:   req.SupplyIDs,
		Quantities:  req.Quantities,
		DiscountPct: req.DiscountPct,
		CreatedBy:   c.GetString(middleware.ContextKeyUserID),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyPack):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Pack must reference at least one supply"})
		case errors.Is(err, services.ErrSupplyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Supply not found"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build pack"})
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetCurrencies handles GET /v1/currencies
func (h *RestCatalogHandler) GetCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"currencies": money.Currencies(),
		"rates":      money.Rates(),
	})
}
