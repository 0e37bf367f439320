package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"serviciosmarket/core/internal/api/middleware"
	"serviciosmarket/core/internal/models"
	"serviciosmarket/core/internal/services"
	"serviciosmarket/core/internal/store"
)

// RestDemandHandler handles REST requests for service demands.
type RestDemandHandler struct {
	marketService services.IMarketService
}

// NewRestDemandHandler creates a new RestDemandHandler.
func NewRestDemandHandler(marketService services.IMarketService) *RestDemandHandler {
	return &RestDemandHandler{marketService: marketService}
}

type publishDemandRequest struct {
	Title             string                  `json:"title" binding:"required"`
	Description       string                  `json:"description"`
	Categoria         models.ServiceCategory  `json:"categoria" binding:"required"`
	Direccion         string                  `json:"direccion"`
	Ciudad            string                  `json:"ciudad"`
	FechaPreferida    time.Time               `json:"fechaPreferida"`
	InsumosRequeridos []models.RequiredSupply `json:"insumosRequeridos"`
}

type updateDemandRequest struct {
	Title             *string                  `json:"title"`
	Description       *string                  `json:"description"`
	Categoria         *models.ServiceCategory  `json:"categoria"`
	Direccion         *string                  `json:"direccion"`
	Ciudad            *string                  `json:"ciudad"`
	FechaPreferida    *time.Time               `json:"fechaPreferida"`
	InsumosRequeridos *[]models.RequiredSupply `json:"insumosRequeridos"`
	Estado            *models.ServiceStatus    `json:"estado"`
}

type selectQuoteRequest struct {
	QuoteID string `json:"quoteId" binding:"required"`
}

// ListDemands handles GET /v1/demands
func (h *RestDemandHandler) ListDemands(c *gin.Context) {
	demands, err := h.marketService.ListDemands(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list demands"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": demands})
}

// GetDemand handles GET /v1/demands/:id
func (h *RestDemandHandler) GetDemand(c *gin.Context) {
	demand, err := h.marketService.GetDemand(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrDemandNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Demand not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve demand"})
		return
	}
	c.JSON(http.StatusOK, demand)
}

// PublishDemand handles POST /v1/demands
func (h *RestDemandHandler) PublishDemand(c *gin.Context) {
	var req publishDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid demand payload"})
		return
	}

	created, err := h.marketService.PublishDemand(c.Request.Context(), models.ServiceDemand{
		SolicitanteID:     c.GetString(middleware.ContextKeyUserID),
		Title:             req.Title,
		Description:       req.Description,
		Categoria:         req.Categoria,
		Direccion:         req.Direccion,
		Ciudad:            req.Ciudad,
		FechaPreferida:    req.FechaPreferida,
		InsumosRequeridos: req.InsumosRequeridos,
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish demand"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateDemand handles PATCH /v1/demands/:id
func (h *RestDemandHandler) UpdateDemand(c *gin.Context) {
	var req updateDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid demand payload"})
		return
	}

	updated, err := h.marketService.UpdateDemand(c.Request.Context(), c.Param("id"), store.ServicePatch{
		Title:             req.Title,
		Description:       req.Description,
		Categoria:         req.Categoria,
		Direccion:         req.Direccion,
		Ciudad:            req.Ciudad,
		FechaPreferida:    req.FechaPreferida,
		InsumosRequeridos: req.InsumosRequeridos,
		Estado:            req.Estado,
	})
	if err != nil {
		if errors.Is(err, services.ErrDemandNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Demand not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update demand"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetQuotes handles GET /v1/demands/:id/quotes
func (h *RestDemandHandler) GetQuotes(c *gin.Context) {
	quotes, err := h.marketService.QuotesForDemand(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrDemandNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Demand not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list quotes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": quotes})
}

// Compare handles GET /v1/demands/:id/comparison
func (h *RestDemandHandler) Compare(c *gin.Context) {
	comparison, err := h.marketService.Compare(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrDemandNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Demand not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build comparison"})
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// SelectQuote handles POST /v1/demands/:id/select
func (h *RestDemandHandler) SelectQuote(c *gin.Context) {
	var req selectQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quoteId is required"})
		return
	}

	updated, err := h.marketService.SelectQuote(c.Request.Context(), c.Param("id"), req.QuoteID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDemandNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Demand not found"})
		case errors.Is(err, services.ErrQuoteNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		case errors.Is(err, services.ErrQuoteMismatch):
			c.JSON(http.StatusConflict, gin.H{"error": "Quote does not belong to this demand"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select quote"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetSelectedQuote handles GET /v1/demands/:id/selected
func (h *RestDemandHandler) GetSelectedQuote(c *gin.Context) {
	quote, err := h.marketService.SelectedQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDemandNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Demand not found"})
		case errors.Is(err, services.ErrQuoteNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No quote selected"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve selected quote"})
		}
		return
	}
	c.JSON(http.StatusOK, quote)
}
