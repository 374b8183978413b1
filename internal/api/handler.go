package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"solar_marketplace/internal/catalog"
	"solar_marketplace/internal/domain"
	"solar_marketplace/internal/search"
	"solar_marketplace/internal/service"
	"solar_marketplace/pkg/logger"
)

// APIVersion is reported in search responses.
const APIVersion = "1.0"

// Handler handles HTTP requests.
type Handler struct {
	svc *service.Service
}

// NewHandler creates a new handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Recommend handles POST /api/recommendations.
func (h *Handler) Recommend(c *gin.Context) {
	var req domain.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid JSON body",
		})
		return
	}

	res, err := h.svc.Recommend(req)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Validation failed",
				"details": ve.Fields,
			})
			return
		}
		logger.Errorf("Recommendation error (type=%s): %v", req.Type, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Recommendation generation failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    res,
	})
}

// Search handles POST /api/search.
func (h *Handler) Search(c *gin.Context) {
	var q search.Query
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid JSON body",
		})
		return
	}

	res, err := h.svc.Search(q)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Validation failed",
				"details": ve.Fields,
			})
			return
		}
		logger.Errorf("Search error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Search failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      res,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   APIVersion,
	})
}

// GetEquipment handles GET /api/equipment/:category with query-param
// criteria.
func (h *Handler) GetEquipment(c *gin.Context) {
	category := c.Param("category")
	cr := catalog.Criteria{
		Type:          c.Query("type"),
		Tier:          getIntParam(c, "tier", 0),
		Manufacturer:  c.Query("manufacturer"),
		MinWattage:    getFloatParam(c, "min_wattage", 0),
		MaxWattage:    getFloatParam(c, "max_wattage", 0),
		MinEfficiency: getFloatParam(c, "min_efficiency", 0),
		MaxEfficiency: getFloatParam(c, "max_efficiency", 0),
		MaxPrice:      getFloatParam(c, "max_price", 0),
		MinCapacity:   getFloatParam(c, "min_capacity", 0),
		MaxCapacity:   getFloatParam(c, "max_capacity", 0),
		Availability:  c.Query("availability"),
	}

	items, err := h.svc.Equipment(category, cr)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Validation failed",
				"details": ve.Fields,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": category,
		"items":    items,
	})
}

// GetStats handles GET /api/stats.
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Stats())
}

// Health handles GET /api/health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Helper functions
func getIntParam(c *gin.Context, key string, defaultValue int) int {
	if value := c.Query(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getFloatParam(c *gin.Context, key string, defaultValue float64) float64 {
	if value := c.Query(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil && floatValue > 0 {
			return floatValue
		}
	}
	return defaultValue
}
