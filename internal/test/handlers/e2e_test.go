package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"rg-pet-backend/internal/config"
	"rg-pet-backend/internal/handlers"
	"rg-pet-backend/internal/models"
	"rg-pet-backend/internal/services"
)

// fullRouter wires the public and admin surfaces against one shared
// in-memory store, with a real resolver over an empty fake bucket.
func fullRouter(store *fakeOrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Environment: "test"}
	logger := zap.NewNop()

	resolver := services.NewPhotoResolver(&fakePhotoLister{}, store, logger)
	orders := handlers.NewOrdersHandler(store, logger, cfg)
	admin := handlers.NewAdminHandler(store, resolver, logger, cfg)

	router := gin.New()
	router.POST("/api/orders", orders.CreateOrder)
	router.GET("/admin/api/orders", admin.ListOrders)
	router.PATCH("/admin/api/orders/:id", admin.UpdateOrderStatus)
	return router
}

func TestCreateThenList(t *testing.T) {
	store := &fakeOrderStore{}
	router := fullRouter(store)

	w := postJSON(t, router, "/api/orders", models.CreateOrderRequest{
		PetName:      "Rex",
		PetGender:    "macho",
		OwnerName:    "Ana",
		OwnerContact: "11999999999",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.CreateOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.OrderID)

	// raw JSON so the null pet_photo_url is visible
	var listed struct {
		Orders []map[string]any `json:"orders"`
	}
	lw := getJSON(t, router, "/admin/api/orders?page=1&limit=10", &listed)
	require.Equal(t, http.StatusOK, lw.Code)
	require.Len(t, listed.Orders, 1)

	order := listed.Orders[0]
	assert.Equal(t, created.OrderID, order["id"])
	assert.Equal(t, "pending", order["status"])
	assert.Nil(t, order["pet_photo_url"])
}

func TestUpdateStatusRefreshesUpdatedAt(t *testing.T) {
	store := &fakeOrderStore{}
	router := fullRouter(store)

	w := postJSON(t, router, "/api/orders", models.CreateOrderRequest{
		PetName:      "Rex",
		PetGender:    "macho",
		OwnerName:    "Ana",
		OwnerContact: "11999999999",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	before := store.orders[0].UpdatedAt

	time.Sleep(5 * time.Millisecond)

	pw := patchStatus(t, router, store.orders[0].ID.String(), models.StatusCompleted)
	require.Equal(t, http.StatusOK, pw.Code)

	var resp models.UpdateOrderResponse
	require.NoError(t, json.Unmarshal(pw.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusCompleted, resp.Order.Status)
	assert.True(t, resp.Order.UpdatedAt.After(before),
		"updated_at must be strictly greater after a status change")
}
