package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"rg-pet-backend/internal/config"
	"rg-pet-backend/internal/metrics"
	"rg-pet-backend/internal/models"
)

// OrderStore is the slice of the order store the handlers consume.
// *supabase.OrderStore implements it.
type OrderStore interface {
	CreateOrder(req *models.CreateOrderRequest) (*models.Order, error)
	ListOrders(page, limit int) ([]models.Order, int, error)
	UpdateOrderStatus(orderID uuid.UUID, status string) (*models.Order, error)
	DeleteOrder(orderID uuid.UUID) (*models.Order, error)
	OrderStats() (*models.OrderStats, error)
	RecentOrders(limit int) ([]models.Order, error)
}

type OrdersHandler struct {
	store  OrderStore
	logger *zap.Logger
	errs   errorWriter
}

func NewOrdersHandler(store OrderStore, logger *zap.Logger, cfg *config.Config) *OrdersHandler {
	return &OrdersHandler{
		store:  store,
		logger: logger,
		errs:   newErrorWriter(cfg),
	}
}

// CreateOrder godoc
// @Summary     Create a new pet registration order
// @Description Stores the wizard submission and returns the generated order id and number
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       request body models.CreateOrderRequest true "Order fields"
// @Success     201 {object} models.CreateOrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/orders [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Dados incompletos",
			Message: "Corpo da requisição inválido",
		})
		return
	}

	order, err := h.store.CreateOrder(&req)
	if err != nil {
		h.errs.write(c, err, "Erro interno ao salvar pedido")
		return
	}

	h.logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber))
	metrics.OrdersCreatedTotal.Inc()

	c.JSON(http.StatusCreated, models.CreateOrderResponse{
		Success:     true,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		Message:     "Pedido criado com sucesso!",
	})
}
