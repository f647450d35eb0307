package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockroom/internal/auth"
	authrepo "stockroom/internal/auth/repository"
	"stockroom/internal/commons"
	"stockroom/internal/domain"
	"stockroom/internal/infrastructure/logger"
	"stockroom/internal/order"
	orderrepo "stockroom/internal/order/repository"
	"stockroom/internal/product"
	productrepo "stockroom/internal/product/repository"
	"stockroom/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := commons.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	now := time.Now().UTC()

	var seedProducts []domain.Product
	if cfg.Inventory.SeedData {
		seedProducts = productrepo.SeedProducts(now)
	}
	productRepo := productrepo.NewMemoryProductRepository(seedProducts...)
	orderRepo := orderrepo.NewMemoryOrderRepository()

	seedUsers, err := authrepo.DefaultUsers(cfg.Auth.BcryptCost, now)
	if err != nil {
		zapLogger.Fatal("seeding users", zap.Error(err))
	}
	userRepo := authrepo.NewMemoryUserRepository(seedUsers...)

	zapLogger.Info("in-memory stores ready",
		zap.Int("products", len(seedProducts)),
		zap.Int("users", len(seedUsers)))

	productCtrl := product.NewModule(productRepo, cfg.Inventory, zapLogger)
	orderCtrl := order.NewModule(orderRepo, productRepo, zapLogger)
	authCtrl, gate := auth.NewModule(userRepo, cfg.Auth, zapLogger)

	router := server.NewRouter(productCtrl, orderCtrl, authCtrl, gate, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
