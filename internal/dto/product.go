package dto

import (
	"time"

	"stockroom/internal/domain"
)

type ProductDTO struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	SKU           string     `json:"sku"`
	Category      string     `json:"category"`
	CurrentStock  int        `json:"currentStock"`
	MinStock      int        `json:"minStock"`
	MaxStock      int        `json:"maxStock"`
	UnitPrice     float64    `json:"unitPrice"`
	Damaged       int        `json:"damaged"`
	TotalSold     int        `json:"totalSold"`
	StockStatus   string     `json:"stockStatus"`
	LastRestocked string     `json:"lastRestocked,omitempty"`
	LastSoldDate  *time.Time `json:"lastSoldDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

func NewProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		CurrentStock:  p.CurrentStock,
		MinStock:      p.MinStock,
		MaxStock:      p.MaxStock,
		UnitPrice:     p.UnitPrice,
		Damaged:       p.Damaged,
		TotalSold:     p.TotalSold,
		StockStatus:   string(p.StockStatus()),
		LastRestocked: p.LastRestocked,
		LastSoldDate:  p.LastSoldDate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type ProductListResponse struct {
	Products []ProductDTO `json:"products"`
	Count    int          `json:"count"`
}

type CreateProductRequest struct {
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Category      string  `json:"category"`
	CurrentStock  int     `json:"currentStock"`
	MinStock      int     `json:"minStock"`
	MaxStock      int     `json:"maxStock"`
	UnitPrice     float64 `json:"unitPrice"`
	Damaged       int     `json:"damaged"`
	LastRestocked string  `json:"lastRestocked"`
}

// UpdateProductRequest is a partial update. Pointer fields double as the
// allowed-field whitelist: absent fields keep their current value.
type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	SKU           *string  `json:"sku"`
	Category      *string  `json:"category"`
	CurrentStock  *int     `json:"currentStock"`
	MinStock      *int     `json:"minStock"`
	MaxStock      *int     `json:"maxStock"`
	UnitPrice     *float64 `json:"unitPrice"`
	Damaged       *int     `json:"damaged"`
	LastRestocked *string  `json:"lastRestocked"`
}

type AvailableStockDTO struct {
	ProductDTO
	AvailableStock int `json:"availableStock"`
	DamagedStock   int `json:"damagedStock"`
}

type AvailableStockResponse struct {
	Products []AvailableStockDTO `json:"products"`
	Count    int                 `json:"count"`
}

type AnalyticsSummary struct {
	TotalProducts       int          `json:"totalProducts"`
	LowStockCount       int          `json:"lowStockCount"`
	OverstockCount      int          `json:"overstockCount"`
	TotalInventoryValue float64      `json:"totalInventoryValue"`
	DamagedValue        float64      `json:"damagedValue"`
	TopPerformers       []ProductDTO `json:"topPerformers"`
}
