package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"serviciosmarket/core/internal/api/handlers"
	"serviciosmarket/core/internal/models"
	"serviciosmarket/core/internal/services"
)

func TestRestQuoteHandler_SubmitQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockMarketSvc := new(MockMarketService)
	handler := handlers.NewRestQuoteHandler(mockMarketSvc)

	r := gin.New()
	r.POST("/v1/quotes", asUser("usr-02", models.RoleProveedorServicio), handler.SubmitQuote)

	created := &models.Quote{
		ID:         "qte-new",
		ServiceID:  "srv-01",
		ProviderID: "usr-02",
		TotalPrice: 12500,
		Currency:   "USD",
	}
	mockMarketSvc.On("SubmitQuote", mock.Anything, mock.MatchedBy(func(input models.Quote) bool {
		return input.ServiceID == "srv-01" && input.ProviderID == "usr-02" && input.TotalPrice == 12500
	})).Return(created, nil)

	body := `{"serviceId":"srv-01","totalPrice":12500,"currency":"USD","leadTimeDays":7}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var respBody models.Quote
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, "qte-new", respBody.ID)
	mockMarketSvc.AssertExpectations(t)
}

func TestRestQuoteHandler_SubmitQuote_DemandMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockMarketSvc := new(MockMarketService)
	handler := handlers.NewRestQuoteHandler(mockMarketSvc)

	r := gin.New()
	r.POST("/v1/quotes", asUser("usr-02", models.RoleProveedorServicio), handler.SubmitQuote)

	mockMarketSvc.On("SubmitQuote", mock.Anything, mock.Anything).Return(nil, services.ErrDemandNotFound)

	body := `{"serviceId":"srv-missing","totalPrice":100,"currency":"USD"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockMarketSvc.AssertExpectations(t)
}

func TestRestQuoteHandler_UpdateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockMarketSvc := new(MockMarketService)
	handler := handlers.NewRestQuoteHandler(mockMarketSvc)

	r := gin.New()
	r.PATCH("/v1/quotes/:id", asUser("usr-02", models.RoleProveedorServicio), handler.UpdateQuote)

	updated := &models.Quote{ID: "qte-01", TotalPrice: 38000, Currency: "USD"}
	mockMarketSvc.On("UpdateQuote", mock.Anything, "qte-01", mock.Anything).Return(updated, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/v1/quotes/qte-01", strings.NewReader(`{"totalPrice":38000}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var respBody models.Quote
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, 38000.0, respBody.TotalPrice)
	mockMarketSvc.AssertExpectations(t)
}

func TestRestQuoteHandler_WithdrawQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockMarketSvc := new(MockMarketService)
	handler := handlers.NewRestQuoteHandler(mockMarketSvc)

	r := gin.New()
	r.DELETE("/v1/quotes/:id", asUser("usr-02", models.RoleProveedorServicio), handler.WithdrawQuote)

	mockMarketSvc.On("WithdrawQuote", mock.Anything, "qte-01").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/v1/quotes/qte-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockMarketSvc.AssertExpectations(t)
}

func TestRestQuoteHandler_WithdrawQuote_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockMarketSvc := new(MockMarketService)
	handler := handlers.NewRestQuoteHandler(mockMarketSvc)

	r := gin.New()
	r.DELETE("/v1/quotes/:id", asUser("usr-02", models.RoleProveedorServicio), handler.WithdrawQuote)

	mockMarketSvc.On("WithdrawQuote", mock.Anything, "qte-missing").Return(services.ErrQuoteNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/v1/quotes/qte-missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockMarketSvc.AssertExpectations(t)
}
