package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"serviciosmarket/core/internal/api/middleware"
	"serviciosmarket/core/internal/models"
	"serviciosmarket/core/internal/services"
	"serviciosmarket/core/internal/store"
)

// RestQuoteHandler handles REST requests for quotes.
type RestQuoteHandler struct {
	marketService services.IMarketService
}

// NewRestQuoteHandler creates a new RestQuoteHandler.
func NewRestQuoteHandler(marketService services.IMarketService) *RestQuoteHandler {
	return &RestQuoteHandler{marketService: marketService}
}

type submitQuoteRequest struct {
	ServiceID         string             `json:"serviceId" binding:"required"`
	ProviderName      string             `json:"providerName"`
	TotalPrice        float64            `json:"totalPrice" binding:"required"`
	Currency          string             `json:"currency" binding:"required"`
	LeadTimeDays      int                `json:"leadTimeDays"`
	Rating            float64            `json:"rating"`
	Message           string             `json:"message"`
	SuppliesBreakdown []models.QuoteLine `json:"suppliesBreakdown"`
}

type updateQuoteRequest struct {
	ProviderName      *string             `json:"providerName"`
	TotalPrice        *float64            `json:"totalPrice"`
	Currency          *string             `json:"currency"`
	LeadTimeDays      *int                `json:"leadTimeDays"`
	Rating            *float64            `json:"rating"`
	Message           *string             `json:"message"`
	SuppliesBreakdown *[]models.QuoteLine `json:"suppliesBreakdown"`
}

// SubmitQuote handles POST /v1/quotes
func (h *RestQuoteHandler) SubmitQuote(c *gin.Context) {
	var req submitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote payload"})
		return
	}

	created, err := h.marketService.SubmitQuote(c.Request.Context(), models.Quote{
		ServiceID:         req.ServiceID,
		ProviderID:        c.GetString(middleware.ContextKeyUserID),
		ProviderName:      req.ProviderName,
		TotalPrice:        req.TotalPrice,
		Currency:          req.Currency,
		LeadTimeDays:      req.LeadTimeDays,
		Rating:            req.Rating,
		Message:           req.Message,
		SuppliesBreakdown: req.SuppliesBreakdown,
	})
	if err != nil {
		if errors.Is(err, services.ErrDemandNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Demand not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit quote"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateQuote handles PATCH /v1/quotes/:id
func (h *RestQuoteHandler) UpdateQuote(c *gin.Context) {
	var req updateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote payload"})
		return
	}

	updated, err := h.marketService.UpdateQuote(c.Request.Context(), c.Param("id"), store.QuotePatch{
		ProviderName:      req.ProviderName,
		TotalPrice:        req.TotalPrice,
		Currency:          req.Currency,
		LeadTimeDays:      req.LeadTimeDays,
		Rating:            req.Rating,
		Message:           req.Message,
		SuppliesBreakdown: req.SuppliesBreakdown,
	})
	if err != nil {
		if errors.Is(err, services.ErrQuoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quote"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// WithdrawQuote handles DELETE /v1/quotes/:id
func (h *RestQuoteHandler) WithdrawQuote(c *gin.Context) {
	if err := h.marketService.WithdrawQuote(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrQuoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to withdraw quote"})
		return
	}
	c.Status(http.StatusNoContent)
}
