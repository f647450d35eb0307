package order

import (
	"stockroom/internal/order/controller"
	"stockroom/internal/order/repository"
	"stockroom/internal/order/usecase"
	productrepo "stockroom/internal/product/repository"

	"go.uber.org/zap"
)

func NewModule(orderRepo *repository.MemoryOrderRepository, productRepo *productrepo.MemoryProductRepository, logger *zap.Logger) *controller.OrdersController {
	uc := usecase.NewOrdersUseCase(orderRepo, productRepo, logger)
	return controller.NewOrdersController(uc, logger)
}
