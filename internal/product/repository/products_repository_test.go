package repository

import (
	"context"
	"testing"
	"time"

	"stockroom/internal/domain"
	"stockroom/internal/errors"
)

func TestInsert_AssignsSequentialID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	first, err := repo.Insert(ctx, domain.Product{Name: "Tile", SKU: "T-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("expected id 1 for first product, got %d", first.ID)
	}

	second, err := repo.Insert(ctx, domain.Product{Name: "Light", SKU: "L-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("expected id 2 for second product, got %d", second.ID)
	}
}

func TestInsert_IDIsMaxPlusOneAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository(
		domain.Product{ID: 1, Name: "A"},
		domain.Product{ID: 2, Name: "B"},
		domain.Product{ID: 3, Name: "C"},
	)

	if _, err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created, err := repo.Insert(ctx, domain.Product{Name: "D"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 4 {
		t.Errorf("expected id 4 (max existing + 1), got %d", created.ID)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	_, err := repo.FindByID(ctx, 99)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := errors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestSave_ReplacesRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository(domain.Product{ID: 1, Name: "Tile", CurrentStock: 10})

	updated := domain.Product{ID: 1, Name: "Tile XL", CurrentStock: 25}
	saved, err := repo.Save(ctx, updated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Name != "Tile XL" || saved.CurrentStock != 25 {
		t.Errorf("unexpected saved record: %+v", saved)
	}

	got, err := repo.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Tile XL" {
		t.Errorf("expected replacement to be visible, got %+v", got)
	}
}

func TestDelete_RemovesRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository(domain.Product{ID: 1, Name: "Tile"})

	removed, err := repo.Delete(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.Name != "Tile" {
		t.Errorf("expected removed product, got %+v", removed)
	}

	if _, err := repo.FindByID(ctx, 1); err == nil {
		t.Errorf("expected product to be gone")
	}
}

func TestDebitStock_Succeeds(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryProductRepository(domain.Product{
		ID: 1, CurrentStock: 100, Damaged: 10, MinStock: 50, MaxStock: 200, TotalSold: 5,
	})

	debited, err := repo.DebitStock(ctx, 1, 90, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if debited.CurrentStock != 10 {
		t.Errorf("expected currentStock 10, got %d", debited.CurrentStock)
	}
	if debited.TotalSold != 95 {
		t.Errorf("expected totalSold 95, got %d", debited.TotalSold)
	}
	if debited.LastSoldDate == nil || !debited.LastSoldDate.Equal(now) {
		t.Errorf("expected lastSoldDate %v, got %v", now, debited.LastSoldDate)
	}
}

func TestDebitStock_InsufficientReportsAvailable(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository(domain.Product{ID: 1, CurrentStock: 100, Damaged: 10})

	if _, err := repo.DebitStock(ctx, 1, 90, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := repo.DebitStock(ctx, 1, 1, time.Now())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	stockErr, ok := errors.IsInsufficientStockError(err)
	if !ok {
		t.Fatalf("expected InsufficientStockError, got %T", err)
	}
	if stockErr.Available != 0 {
		t.Errorf("expected available 0, got %d", stockErr.Available)
	}
}

func TestDebitStock_RejectionMutatesNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository(domain.Product{ID: 1, CurrentStock: 10, Damaged: 2, TotalSold: 3})

	for i := 0; i < 2; i++ {
		if _, err := repo.DebitStock(ctx, 1, 9, time.Now()); err == nil {
			t.Fatalf("expected rejection on attempt %d", i+1)
		}
	}

	got, err := repo.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CurrentStock != 10 || got.TotalSold != 3 || got.LastSoldDate != nil {
		t.Errorf("rejected debit must not mutate the product, got %+v", got)
	}
}

func TestDebitStock_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	_, err := repo.DebitStock(ctx, 42, 1, time.Now())
	if _, ok := errors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestFindAll_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository(domain.Product{ID: 1, Name: "Tile"})

	products, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	products[0].Name = "mutated"

	got, err := repo.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Tile" {
		t.Errorf("repository state leaked through FindAll")
	}
}
