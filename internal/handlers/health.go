package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"rg-pet-backend/internal/config"
	"rg-pet-backend/internal/models"
)

const (
	serviceName    = "RG Pet Backend"
	serviceVersion = "2.3.0"
)

// HealthHandler godoc
// @Summary     Health check
// @Description Returns the health status of the API
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /api/health [get]
func HealthHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:      "OK",
			Timestamp:   time.Now().UTC(),
			Service:     serviceName,
			Version:     serviceVersion,
			Environment: cfg.Environment,
			Bucket:      cfg.SupabaseBucket,
		})
	}
}
