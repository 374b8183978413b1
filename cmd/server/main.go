package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solar_marketplace/internal/api"
	"solar_marketplace/internal/catalog"
	"solar_marketplace/internal/config"
	"solar_marketplace/internal/service"
	"solar_marketplace/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.LogDir); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	logger.Info("Starting Solar Equipment Recommendation Service")

	// Load the equipment catalog
	cat, err := loadCatalog(cfg)
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}

	// Initialize services
	svc := service.New(cat, cfg)
	defer svc.Close()

	// Setup HTTP server
	router := setupRouter(svc)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Server starting on port %d", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced shutdown:", err)
	}

	logger.Info("Server stopped gracefully")
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	switch cfg.CatalogSource {
	case config.CatalogFile:
		return catalog.LoadFromFile(cfg.CatalogPath)
	case config.CatalogSQLite:
		store, err := catalog.OpenStore(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		if err := store.EnsureSchema(); err != nil {
			return nil, err
		}
		if err := store.SeedIfEmpty(catalog.SeedData()); err != nil {
			return nil, err
		}
		return store.LoadCatalog()
	default:
		return catalog.New(catalog.SeedData())
	}
}

func setupRouter(svc *service.Service) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(api.RequestID())
	r.Use(api.Logger())
	r.Use(api.CORS())

	// API routes
	api.SetupRoutes(r, svc)

	return r
}
