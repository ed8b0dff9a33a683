package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/foodbook/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestLogger(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		lists := v1.Group("/shopping-lists")
		{
			lists.POST("/generate", handler.GenerateShoppingList)
			lists.POST("/from-ingredients", handler.GenerateFromIngredients)
			lists.POST("/from-meal-plan", handler.GenerateFromMealPlan)
			lists.GET("/categories", handler.ListCategories)
			lists.POST("/optimize", handler.OptimizeShoppingList)
			lists.POST("/export", handler.ExportShoppingList)
			lists.GET("/exports/:id", handler.GetExportedList)
		}
	}

	return router
}
