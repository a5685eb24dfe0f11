package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"rg-pet-backend/internal/config"
	"rg-pet-backend/internal/handlers"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Environment:    "test",
		SupabaseBucket: "backrg",
	}

	router := gin.New()
	router.GET("/api/health", handlers.HealthHandler(cfg))

	req, _ := http.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"OK"`)
	assert.Contains(t, w.Body.String(), `"bucket":"backrg"`)
}
