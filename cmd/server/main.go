package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/foodbook/backend/config"
	httpDelivery "github.com/foodbook/backend/internal/delivery/http"
	"github.com/foodbook/backend/internal/infrastructure/cache"
	"github.com/foodbook/backend/internal/infrastructure/notes"
	"github.com/foodbook/backend/internal/pkg/logging"
	"github.com/foodbook/backend/internal/usecase"
)

func main() {
	// Best-effort .env load for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting FoodBook backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port))

	// Infrastructure
	noteStore, err := notes.NewStore(cfg.Export.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open export store", zap.Error(err))
	}
	defer noteStore.Close()

	listCache := cache.NewMemoryCache()

	// Usecase layer
	shoppingService := usecase.NewShoppingService(
		listCache,
		noteStore,
		logger,
		usecase.ShoppingServiceConfig{
			CacheTTL:         cfg.Cache.TTL,
			DefaultItemPrice: cfg.Pricing.DefaultItemPrice,
		},
	)

	// HTTP delivery
	handler := httpDelivery.NewHandler(shoppingService)
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
