package repository

import (
	"context"
	"fmt"
	"sync"

	"stockroom/internal/domain"
	"stockroom/internal/errors"
)

// MemoryOrderRepository is the order ledger. Orders are append-only; ids are
// sequential (count + 1) and orders are never removed, so ids cannot collide.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) Insert(ctx context.Context, order domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = len(r.orders) + 1
	r.orders = append(r.orders, order)

	created := order
	return &created, nil
}

func (r *MemoryOrderRepository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
}

func (r *MemoryOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

func (r *MemoryOrderRepository) FindByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}
