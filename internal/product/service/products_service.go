package service

import (
	"context"
	"sort"
	"time"

	"stockroom/internal/domain"
	"stockroom/internal/dto"
	"stockroom/internal/errors"
)

type Repository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	Insert(ctx context.Context, product domain.Product) (*domain.Product, error)
	Save(ctx context.Context, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int) (*domain.Product, error)
}

type ProductService struct {
	repo            Repository
	lowDemandWindow time.Duration
	now             func() time.Time
}

func NewProductService(repo Repository, lowDemandWindow time.Duration) *ProductService {
	return &ProductService{
		repo:            repo,
		lowDemandWindow: lowDemandWindow,
		now:             time.Now,
	}
}

func (s *ProductService) ListProducts(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return newProductListResponse(products), nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*dto.ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.NewProductDTO(*product)
	return &result, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductDTO, error) {
	if err := validateProductFields(req.Name, req.SKU, req.Category, req.CurrentStock, req.MinStock, req.MaxStock, req.Damaged, req.UnitPrice); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	lastRestocked := req.LastRestocked
	if lastRestocked == "" {
		lastRestocked = now.Format("2006-01-02")
	}

	product := domain.Product{
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      req.Category,
		CurrentStock:  req.CurrentStock,
		MinStock:      req.MinStock,
		MaxStock:      req.MaxStock,
		UnitPrice:     req.UnitPrice,
		Damaged:       req.Damaged,
		TotalSold:     0,
		LastRestocked: lastRestocked,
		CreatedAt:     now,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		return nil, err
	}
	result := dto.NewProductDTO(*created)
	return &result, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int, req dto.UpdateProductRequest) (*dto.ProductDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.SKU != nil {
		merged.SKU = *req.SKU
	}
	if req.Category != nil {
		merged.Category = *req.Category
	}
	if req.CurrentStock != nil {
		merged.CurrentStock = *req.CurrentStock
	}
	if req.MinStock != nil {
		merged.MinStock = *req.MinStock
	}
	if req.MaxStock != nil {
		merged.MaxStock = *req.MaxStock
	}
	if req.UnitPrice != nil {
		merged.UnitPrice = *req.UnitPrice
	}
	if req.Damaged != nil {
		merged.Damaged = *req.Damaged
	}
	if req.LastRestocked != nil {
		merged.LastRestocked = *req.LastRestocked
	}

	if err := validateProductFields(merged.Name, merged.SKU, merged.Category, merged.CurrentStock, merged.MinStock, merged.MaxStock, merged.Damaged, merged.UnitPrice); err != nil {
		return nil, err
	}

	updatedAt := s.now().UTC()
	merged.UpdatedAt = &updatedAt

	saved, err := s.repo.Save(ctx, merged)
	if err != nil {
		return nil, err
	}
	result := dto.NewProductDTO(*saved)
	return &result, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) (*dto.ProductDTO, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.NewProductDTO(*removed)
	return &result, nil
}

// LowStockAlerts returns products at or below their reorder threshold.
func (s *ProductService) LowStockAlerts(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var low []domain.Product
	for _, p := range products {
		if p.CurrentStock <= p.MinStock {
			low = append(low, p)
		}
	}
	return newProductListResponse(low), nil
}

// LowDemandProducts returns products never sold, or whose last sale is
// strictly older than the low-demand window. A sale exactly at the window
// boundary does not count as low demand.
func (s *ProductService) LowDemandProducts(ctx context.Context, reference time.Time) (*dto.ProductListResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := reference.Add(-s.lowDemandWindow)
	var lowDemand []domain.Product
	for _, p := range products {
		if p.LastSoldDate == nil || p.LastSoldDate.Before(cutoff) {
			lowDemand = append(lowDemand, p)
		}
	}
	return newProductListResponse(lowDemand), nil
}

func (s *ProductService) AvailableStockView(ctx context.Context) (*dto.AvailableStockResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AvailableStockDTO, 0, len(products))
	for _, p := range products {
		items = append(items, dto.AvailableStockDTO{
			ProductDTO:     dto.NewProductDTO(p),
			AvailableStock: p.AvailableStock(),
			DamagedStock:   p.Damaged,
		})
	}
	return &dto.AvailableStockResponse{Products: items, Count: len(items)}, nil
}

func (s *ProductService) Analytics(ctx context.Context) (*dto.AnalyticsSummary, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.AnalyticsSummary{TotalProducts: len(products)}
	for _, p := range products {
		if p.CurrentStock <= p.MinStock {
			summary.LowStockCount++
		}
		if p.MaxStock > 0 && float64(p.CurrentStock)/float64(p.MaxStock) > 0.8 {
			summary.OverstockCount++
		}
		summary.TotalInventoryValue += p.TotalValue()
		summary.DamagedValue += p.DamagedValue()
	}

	// Sort a copy; the registry order is not an analytics side effect.
	ranked := make([]domain.Product, len(products))
	copy(ranked, products)
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].TotalSold > ranked[j].TotalSold })
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	summary.TopPerformers = make([]dto.ProductDTO, 0, len(ranked))
	for _, p := range ranked {
		summary.TopPerformers = append(summary.TopPerformers, dto.NewProductDTO(p))
	}

	return summary, nil
}

func newProductListResponse(products []domain.Product) *dto.ProductListResponse {
	items := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		items = append(items, dto.NewProductDTO(p))
	}
	return &dto.ProductListResponse{Products: items, Count: len(items)}
}

func validateProductFields(name, sku, category string, currentStock, minStock, maxStock, damaged int, unitPrice float64) error {
	var details []errors.ValidationDetail

	if name == "" {
		details = append(details, errors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if sku == "" {
		details = append(details, errors.ValidationDetail{Field: "sku", Message: "sku is required"})
	}
	if category == "" {
		details = append(details, errors.ValidationDetail{Field: "category", Message: "category is required"})
	}
	if currentStock < 0 {
		details = append(details, errors.ValidationDetail{Field: "currentStock", Message: "currentStock must be non-negative"})
	}
	if minStock < 0 {
		details = append(details, errors.ValidationDetail{Field: "minStock", Message: "minStock must be non-negative"})
	}
	if maxStock < 0 {
		details = append(details, errors.ValidationDetail{Field: "maxStock", Message: "maxStock must be non-negative"})
	}
	if minStock > maxStock {
		details = append(details, errors.ValidationDetail{Field: "minStock", Message: "minStock must not exceed maxStock"})
	}
	if damaged < 0 {
		details = append(details, errors.ValidationDetail{Field: "damaged", Message: "damaged must be non-negative"})
	}
	if damaged > currentStock {
		details = append(details, errors.ValidationDetail{Field: "damaged", Message: "damaged must not exceed currentStock"})
	}
	if unitPrice < 0 {
		details = append(details, errors.ValidationDetail{Field: "unitPrice", Message: "unitPrice must be non-negative"})
	}

	if len(details) > 0 {
		return errors.NewValidationError("validation failed", details...)
	}
	return nil
}
