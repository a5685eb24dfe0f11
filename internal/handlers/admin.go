package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"rg-pet-backend/internal/config"
	"rg-pet-backend/internal/metrics"
	"rg-pet-backend/internal/models"
)

const (
	defaultPage  = 1
	defaultLimit = 100
)

// PhotoResolver backfills pet_photo_url on a page of orders.
type PhotoResolver interface {
	ResolveAll(orders []models.Order)
}

type AdminHandler struct {
	store    OrderStore
	resolver PhotoResolver
	logger   *zap.Logger
	errs     errorWriter
}

func NewAdminHandler(store OrderStore, resolver PhotoResolver, logger *zap.Logger, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		store:    store,
		resolver: resolver,
		logger:   logger,
		errs:     newErrorWriter(cfg),
	}
}

// Stats godoc
// @Summary     Aggregate order counts
// @Description Counts all orders and orders per status across the whole table
// @Tags        admin
// @Produce     json
// @Success     200 {object} models.StatsResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/api/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.store.OrderStats()
	if err != nil {
		h.errs.write(c, err, "Erro ao carregar estatísticas")
		return
	}

	c.JSON(http.StatusOK, models.StatsResponse{
		Total:      stats.Total,
		Pending:    stats.Pending,
		Processing: stats.Processing,
		Completed:  stats.Completed,
		Cancelled:  stats.Cancelled,
		UpdatedAt:  time.Now().UTC(),
	})
}

// ListOrders godoc
// @Summary     Paginated order listing with photo resolution
// @Description Returns one page of orders, newest first, with pet_photo_url
// @Description filled in from the bucket where it was missing.
// @Tags        admin
// @Produce     json
// @Param       page query int false "1-based page number" default(1)
// @Param       limit query int false "page size" default(100)
// @Success     200 {object} models.OrderListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/api/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	page := queryInt(c, "page", defaultPage)
	limit := queryInt(c, "limit", defaultLimit)

	orders, total, err := h.store.ListOrders(page, limit)
	if err != nil {
		h.errs.write(c, err, "Erro ao carregar pedidos")
		return
	}

	h.resolver.ResolveAll(orders)

	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, orders[i].ToResponse())
	}

	c.JSON(http.StatusOK, models.OrderListResponse{
		Success: true,
		Orders:  responses,
		Pagination: models.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	})
}

// UpdateOrderStatus godoc
// @Summary     Update an order's status
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       id path string true "Order ID (UUID)"
// @Param       request body models.UpdateStatusRequest true "New status"
// @Success     200 {object} models.UpdateOrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/api/orders/{id} [patch]
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := pathOrderID(c)
	if !ok {
		return
	}

	var req models.UpdateStatusRequest
	_ = c.ShouldBindJSON(&req)

	order, err := h.store.UpdateOrderStatus(orderID, req.Status)
	if err != nil {
		h.errs.write(c, err, "Erro ao atualizar pedido")
		return
	}

	h.logger.Info("order status updated",
		zap.String("order_id", orderID.String()),
		zap.String("status", order.Status))
	metrics.StatusUpdatesTotal.Inc()

	c.JSON(http.StatusOK, models.UpdateOrderResponse{
		Success: true,
		Order:   order.ToResponse(),
		Message: "Status atualizado com sucesso!",
	})
}

// DeleteOrder godoc
// @Summary     Delete an order
// @Description Hard-deletes the order row. Photos in the bucket are kept.
// @Tags        admin
// @Produce     json
// @Param       id path string true "Order ID (UUID)"
// @Success     200 {object} models.DeleteOrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/api/orders/{id} [delete]
func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	orderID, ok := pathOrderID(c)
	if !ok {
		return
	}

	deleted, err := h.store.DeleteOrder(orderID)
	if err != nil {
		h.errs.write(c, err, "Erro ao excluir pedido")
		return
	}

	h.logger.Info("order deleted",
		zap.String("order_id", orderID.String()),
		zap.String("order_number", deleted.OrderNumber))
	metrics.OrdersDeletedTotal.Inc()

	c.JSON(http.StatusOK, models.DeleteOrderResponse{
		Success: true,
		Message: fmt.Sprintf("Pedido %s excluído com sucesso!", deleted.OrderNumber),
		DeletedOrder: models.DeletedOrder{
			ID:          deleted.ID.String(),
			OrderNumber: deleted.OrderNumber,
		},
	})
}

// CheckPhotos godoc
// @Summary     Photo presence diagnostics
// @Description Shows, for the most recent orders, whether a photo URL is persisted
// @Tags        admin
// @Produce     json
// @Success     200 {object} models.CheckPhotosResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/api/check-photos [get]
func (h *AdminHandler) CheckPhotos(c *gin.Context) {
	orders, err := h.store.RecentOrders(5)
	if err != nil {
		h.errs.write(c, err, "Erro ao verificar fotos")
		return
	}

	resp := models.CheckPhotosResponse{
		TotalOrders: len(orders),
		Orders:      make([]models.PhotoCheckEntry, 0, len(orders)),
	}
	for i := range orders {
		o := &orders[i]
		hasPhoto := o.PetPhotoURL.Valid && o.PetPhotoURL.String != ""
		if hasPhoto {
			resp.WithPhotoURL++
		}
		resp.Orders = append(resp.Orders, models.PhotoCheckEntry{
			ID:          o.ID.String(),
			OrderNumber: o.OrderNumber,
			PetName:     o.PetName,
			HasPhotoURL: hasPhoto,
		})
	}

	c.JSON(http.StatusOK, resp)
}

func pathOrderID(c *gin.Context) (uuid.UUID, bool) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "ID inválido",
			Message: "O ID do pedido deve ser um UUID",
		})
		return uuid.UUID{}, false
	}
	return orderID, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
