package api

import (
	"github.com/gin-gonic/gin"

	"solar_marketplace/internal/service"
)

// SetupRoutes registers all API routes.
func SetupRoutes(r *gin.Engine, svc *service.Service) {
	h := NewHandler(svc)

	api := r.Group("/api")
	{
		api.POST("/recommendations", h.Recommend)
		api.POST("/search", h.Search)
		api.GET("/equipment/:category", h.GetEquipment)
		api.GET("/stats", h.GetStats)
		api.GET("/health", h.Health)
	}
}
