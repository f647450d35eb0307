package product

import (
	"stockroom/internal/config"
	"stockroom/internal/product/controller"
	"stockroom/internal/product/repository"
	"stockroom/internal/product/service"

	"go.uber.org/zap"
)

func NewModule(repo *repository.MemoryProductRepository, cfg config.InventoryConfig, logger *zap.Logger) *controller.ProductsController {
	svc := service.NewProductService(repo, cfg.LowDemandWindow)
	return controller.NewProductsController(svc, logger)
}
