package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"rg-pet-backend/internal/config"
	"rg-pet-backend/internal/database"
	"rg-pet-backend/internal/handlers"
	"rg-pet-backend/internal/logger"
	"rg-pet-backend/internal/middleware"
	"rg-pet-backend/internal/services"
	"rg-pet-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Supabase clients
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize supabase client", zap.Error(err))
	}
	storageClient := supabase.NewStorageClient(supabaseClient)

	// Run migrations
	migrator, err := database.NewMigrator(cfg.DatabaseURL, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize migrator", zap.Error(err))
	}
	if err := migrator.Run(); err != nil {
		zlog.Warn("migration failed", zap.Error(err))
	}
	migrator.Close()

	// Order store on the direct PostgreSQL connection
	store, err := supabase.NewOrderStore(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer store.Close()

	resolver := services.NewPhotoResolver(storageClient, store, zlog)

	ordersHandler := handlers.NewOrdersHandler(store, zlog, cfg)
	uploadHandler := handlers.NewUploadHandler(storageClient, zlog, cfg)
	adminHandler := handlers.NewAdminHandler(store, resolver, zlog, cfg)

	// Setup router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public API
	router.GET("/api/health", handlers.HealthHandler(cfg))
	router.POST("/api/orders", ordersHandler.CreateOrder)
	router.POST("/api/upload/signed-url", uploadHandler.CreateSignedURL)

	// Admin API
	admin := router.Group("/admin/api")
	if cfg.AdminJWTSecret != "" {
		admin.Use(middleware.AdminAuth(cfg))
	}
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/orders", adminHandler.ListOrders)
	admin.PATCH("/orders/:id", adminHandler.UpdateOrderStatus)
	admin.DELETE("/orders/:id", adminHandler.DeleteOrder)
	admin.GET("/check-photos", adminHandler.CheckPhotos)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zlog.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("bucket", cfg.SupabaseBucket))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}
}
