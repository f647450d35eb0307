package usecase

import (
	"context"
	"time"

	"stockroom/internal/domain"
	"stockroom/internal/dto"
	apperrors "stockroom/internal/errors"

	"go.uber.org/zap"
)

// StockDebiter is the registry-side boundary of order placement. The
// implementation must run the sufficiency check and the debit atomically.
type StockDebiter interface {
	DebitStock(ctx context.Context, id int, quantity int, now time.Time) (*domain.Product, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, order domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
}

type OrdersUseCase struct {
	orderRepo OrderRepository
	inventory StockDebiter
	logger    *zap.Logger
	now       func() time.Time
}

func NewOrdersUseCase(orderRepo OrderRepository, inventory StockDebiter, logger *zap.Logger) *OrdersUseCase {
	return &OrdersUseCase{
		orderRepo: orderRepo,
		inventory: inventory,
		logger:    logger,
		now:       time.Now,
	}
}

// PlaceOrder debits product stock and appends a completed order holding a
// snapshot of the product at purchase time. A rejected debit leaves both the
// registry and the ledger untouched.
func (uc *OrdersUseCase) PlaceOrder(ctx context.Context, caller domain.Caller, req dto.PlaceOrderRequest) (*dto.OrderDTO, error) {
	if err := validatePlaceOrderRequest(req); err != nil {
		return nil, err
	}

	now := uc.now().UTC()

	product, err := uc.inventory.DebitStock(ctx, req.ProductID, req.Quantity, now)
	if err != nil {
		if stockErr, ok := apperrors.IsInsufficientStockError(err); ok {
			uc.logger.Warn("order rejected",
				zap.Int("userId", caller.ID),
				zap.Int("productId", req.ProductID),
				zap.Int("quantity", req.Quantity),
				zap.Int("available", stockErr.Available))
		}
		return nil, err
	}

	order := domain.Order{
		UserID:      caller.ID,
		Username:    caller.Username,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    req.Quantity,
		UnitPrice:   product.UnitPrice,
		TotalPrice:  product.UnitPrice * float64(req.Quantity),
		Status:      domain.OrderStatusCompleted,
		OrderDate:   now,
		UpdatedAt:   now,
	}

	created, err := uc.orderRepo.Insert(ctx, order)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order placed",
		zap.Int("orderId", created.ID),
		zap.Int("userId", caller.ID),
		zap.Int("productId", product.ID),
		zap.Int("quantity", req.Quantity),
		zap.Float64("totalPrice", created.TotalPrice))

	result := dto.NewOrderDTO(*created)
	return &result, nil
}

// ListOrders returns every order for admins and only the caller's own
// orders otherwise.
func (uc *OrdersUseCase) ListOrders(ctx context.Context, caller domain.Caller) (*dto.OrderListResponse, error) {
	var orders []domain.Order
	var err error

	if caller.IsAdmin() {
		orders, err = uc.orderRepo.FindAll(ctx)
	} else {
		orders, err = uc.orderRepo.FindByUserID(ctx, caller.ID)
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.NewOrderDTO(o))
	}
	return &dto.OrderListResponse{Orders: items, Count: len(items)}, nil
}

func (uc *OrdersUseCase) GetOrder(ctx context.Context, caller domain.Caller, id int) (*dto.OrderDTO, error) {
	order, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.UserID != caller.ID && !caller.IsAdmin() {
		return nil, apperrors.NewForbiddenError("access denied")
	}

	result := dto.NewOrderDTO(*order)
	return &result, nil
}

func validatePlaceOrderRequest(req dto.PlaceOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.ProductID <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
	}
	if req.Quantity < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be at least 1",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
