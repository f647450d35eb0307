package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stockroom/internal/domain"
	"stockroom/internal/errors"
)

// MemoryProductRepository owns the product collection. All state is
// volatile and lives for the life of the process.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewMemoryProductRepository(seed ...domain.Product) *MemoryProductRepository {
	products := make([]domain.Product, len(seed))
	copy(products, seed)
	return &MemoryProductRepository{products: products}
}

func (r *MemoryProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

func (r *MemoryProductRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
}

// Insert assigns the next id (max existing id + 1, or 1 when empty) and
// appends the product.
func (r *MemoryProductRepository) Insert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, p := range r.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	product.ID = maxID + 1
	r.products = append(r.products, product)

	created := product
	return &created, nil
}

func (r *MemoryProductRepository) Save(ctx context.Context, product domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			saved := product
			return &saved, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", product.ID))
}

func (r *MemoryProductRepository) Delete(ctx context.Context, id int) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			removed := p
			r.products = append(r.products[:i], r.products[i+1:]...)
			return &removed, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
}

// DebitStock runs the sufficiency check and the stock debit under one lock
// so concurrent orders cannot oversell. A rejected debit mutates nothing.
func (r *MemoryProductRepository) DebitStock(ctx context.Context, id int, quantity int, now time.Time) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID != id {
			continue
		}

		available := r.products[i].AvailableStock()
		if quantity > available {
			return nil, errors.NewInsufficientStockError(available)
		}

		r.products[i].CurrentStock -= quantity
		r.products[i].TotalSold += quantity
		soldAt := now
		r.products[i].LastSoldDate = &soldAt

		debited := r.products[i]
		return &debited, nil
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
}
