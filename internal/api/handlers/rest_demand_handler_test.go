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

func TestRestDemandHandler_ListDemands(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockMarketSvc := new(MockMarketService)
	handler := handlers.NewRestDemandHandler(mockMarketSvc)

	r := gin.New()
	r.GET("/v1/demands", handler.ListDemands)

	expected := []models.ServiceDemand{
		{ID: "srv-01", Title: "Mantenimiento integral", Estado: models.StatusEnEvaluacion},
		{ID: "srv-02", Title: "Cableado estructurado", Estado: models.StatusPublicado},
	}
	mockMarketSvc.On("ListDemands", mock.Anything).Return(expected, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/demands", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var respBody struct {
		Data []models.ServiceDemand `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Len(t, respBody.Data, 2)
	assert.Equal(t, "srv-01", respBody.Data[0].ID)
	mockMarketSvc.AssertExpectations(t)
}

func TestRestDemandHandler_GetDemand_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockMarketSvc := new(MockMarketService)
	handler := handlers.NewRestDemandHandler(mockMarketSvc)

	r := gin.New()
	r.GET("/v1/demands/:id", handler.GetDemand)

	mockMarketSvc.On("GetDemand", mock.Anything, "srv-missing").Return(nil, services.ErrDemandNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/demands/srv-missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockMarketSvc.AssertExpectations(t)
}

func TestRestDemandHandler_PublishDemand(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockMarketSvc := new(MockMarketService)
	handler := handlers.NewRestDemandHandler(mockMarketSvc)

	r := gin.New()
	r.POST("/v1/demands", asUser("usr-01", models.RoleSolicitante), handler.PublishDemand)

	created := &models.ServiceDemand{
		ID:            "srv-new",
		SolicitanteID: "usr-01",
		Title:         "Poda de árboles",
		Categoria:     models.CategoriaJardineria,
		Estado:        models.StatusPublicado,
	}
	mockMarketSvc.On("PublishDemand", mock.Anything, mock.MatchedBy(func(input models.ServiceDemand) bool {
		return input.SolicitanteID == "usr-01" && input.Title == "Poda de árboles"
	})).Return(created, nil)

	body := `{"title":"Poda de árboles","categoria":"jardineria","ciudad":"Montevideo"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/demands", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var respBody models.ServiceDemand
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, "srv-new", respBody.ID)
	assert.Equal(t, models.StatusPublicado, respBody.Estado)
	mockMarketSvc.AssertExpectations(t)
}

func TestRestDemandHandler_PublishDemand_InvalidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockMarketSvc := new(MockMarketService)
	handler := handlers.NewRestDemandHandler(mockMarketSvc)

	r := gin.New()
	r.POST("/v1/demands", asUser("usr-01", models.RoleSolicitante), handler.PublishDemand)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/demands", strings.NewReader(`{"ciudad":"Montevideo"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMarketSvc.AssertNotCalled(t, "PublishDemand", mock.Anything, mock.Anything)
}

func TestRestDemandHandler_Compare(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockMarketSvc := new(MockMarketService)
	handler := handlers.NewRestDemandHandler(mockMarketSvc)

	r := gin.New()
	r.GET("/v1/demands/:id/comparison", handler.Compare)

	expected := &services.Comparison{
		ServiceID: "srv-01",
		Rows: []services.ComparisonRow{
			{Quote: models.Quote{ID: "qte-01", TotalPrice: 39800, Currency: "USD"}, TotalUSD: 39800},
			{Quote: models.Quote{ID: "qte-02", TotalPrice: 1490000, Currency: "UYU"}, TotalUSD: 37250},
		},
		MinTotalUSD: 37250,
		MaxTotalUSD: 39800,
	}
	mockMarketSvc.On("Compare", mock.Anything, "srv-01").Return(expected, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/demands/srv-01/comparison", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var respBody services.Comparison
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Len(t, respBody.Rows, 2)
	assert.Equal(t, 37250.0, respBody.MinTotalUSD)
	mockMarketSvc.AssertExpectations(t)
}

func TestRestDemandHandler_SelectQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockMarketSvc := new(MockMarketService)
	handler := handlers.NewRestDemandHandler(mockMarketSvc)

	r := gin.New()
	r.POST("/v1/demands/:id/select", asUser("usr-01", models.RoleSolicitante), handler.SelectQuote)

	updated := &models.ServiceDemand{
		ID:                       "srv-01",
		Estado:                   models.StatusAsignado,
		CotizacionSeleccionadaID: "qte-01",
	}
	mockMarketSvc.On("SelectQuote", mock.Anything, "srv-01", "qte-01").Return(updated, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/demands/srv-01/select", strings.NewReader(`{"quoteId":"qte-01"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var respBody models.ServiceDemand
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Equal(t, models.StatusAsignado, respBody.Estado)
	assert.Equal(t, "qte-01", respBody.CotizacionSeleccionadaID)
	mockMarketSvc.AssertExpectations(t)
}

func TestRestDemandHandler_SelectQuote_Mismatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockMarketSvc := new(MockMarketService)
	handler := handlers.NewRestDemandHandler(mockMarketSvc)

	r := gin.New()
	r.POST("/v1/demands/:id/select", asUser("usr-01", models.RoleSolicitante), handler.SelectQuote)

	mockMarketSvc.On("SelectQuote", mock.Anything, "srv-02", "qte-01").Return(nil, services.ErrQuoteMismatch)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/demands/srv-02/select", strings.NewReader(`{"quoteId":"qte-01"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockMarketSvc.AssertExpectations(t)
}

func TestRestDemandHandler_GetSelectedQuote_NoneSelected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockMarketSvc := new(MockMarketService)
	handler := handlers.NewRestDemandHandler(mockMarketSvc)

	r := gin.New()
	r.GET("/v1/demands/:id/selected", handler.GetSelectedQuote)

	mockMarketSvc.On("SelectedQuote", mock.Anything, "srv-01").Return(nil, services.ErrQuoteNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/v1/demands/srv-01/selected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var respBody map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Contains(t, respBody["error"], "No quote selected")
	mockMarketSvc.AssertExpectations(t)
}
