package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"rg-pet-backend/internal/config"
	"rg-pet-backend/internal/handlers"
	"rg-pet-backend/internal/models"
)

func newOrdersRouter(store *fakeOrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Environment: "test"}
	h := handlers.NewOrdersHandler(store, zap.NewNop(), cfg)

	router := gin.New()
	router.POST("/api/orders", h.CreateOrder)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrder(t *testing.T) {
	store := &fakeOrderStore{}
	router := newOrdersRouter(store)

	w := postJSON(t, router, "/api/orders", models.CreateOrderRequest{
		PetName:      "Rex",
		PetGender:    "macho",
		OwnerName:    "Ana",
		OwnerContact: "11999999999",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.CreateOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.OrderID)
	assert.Regexp(t, `^RG-PET-\d+-[0-9A-Z]{5}$`, resp.OrderNumber)
	require.Len(t, store.orders, 1)
	assert.Equal(t, models.StatusPending, store.orders[0].Status)
}

func TestCreateOrder_MissingRequiredField(t *testing.T) {
	cases := []models.CreateOrderRequest{
		{PetGender: "macho", OwnerName: "Ana", OwnerContact: "11999999999"},
		{PetName: "Rex", OwnerName: "Ana", OwnerContact: "11999999999"},
		{PetName: "Rex", PetGender: "macho", OwnerContact: "11999999999"},
		{PetName: "Rex", PetGender: "macho", OwnerName: "Ana"},
	}

	for _, req := range cases {
		store := &fakeOrderStore{}
		router := newOrdersRouter(store)

		w := postJSON(t, router, "/api/orders", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Dados incompletos")
		assert.Empty(t, store.orders, "validation failure must not write a row")
	}
}

func TestCreateOrder_WhitespaceOnlyFieldRejected(t *testing.T) {
	store := &fakeOrderStore{}
	router := newOrdersRouter(store)

	w := postJSON(t, router, "/api/orders", models.CreateOrderRequest{
		PetName:      "   ",
		PetGender:    "macho",
		OwnerName:    "Ana",
		OwnerContact: "11999999999",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.orders)
}

func TestCreateOrder_StoreFailure(t *testing.T) {
	store := &fakeOrderStore{err: assert.AnError}
	router := newOrdersRouter(store)

	w := postJSON(t, router, "/api/orders", models.CreateOrderRequest{
		PetName:      "Rex",
		PetGender:    "macho",
		OwnerName:    "Ana",
		OwnerContact: "11999999999",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Erro interno ao salvar pedido")
}
