package domain

import "time"

type StockStatus string

const (
	StockStatusLow       StockStatus = "LOW_STOCK"
	StockStatusOverstock StockStatus = "OVERSTOCK"
	StockStatusHealthy   StockStatus = "HEALTHY"
)

type Product struct {
	ID            int
	Name          string
	SKU           string
	Category      string
	CurrentStock  int
	MinStock      int
	MaxStock      int
	UnitPrice     float64
	Damaged       int
	TotalSold     int
	LastRestocked string
	LastSoldDate  *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// AvailableStock is the sellable quantity: total on hand minus damaged units.
func (p Product) AvailableStock() int {
	available := p.CurrentStock - p.Damaged
	if available < 0 {
		return 0
	}
	return available
}

// StockStatus classifies the stock level. Low stock wins over overstock when
// both conditions hold; overstock requires strictly more than 80% of maxStock.
func (p Product) StockStatus() StockStatus {
	if p.CurrentStock <= p.MinStock {
		return StockStatusLow
	}
	if p.MaxStock > 0 && float64(p.CurrentStock)/float64(p.MaxStock) > 0.8 {
		return StockStatusOverstock
	}
	return StockStatusHealthy
}

func (p Product) TotalValue() float64 {
	return float64(p.CurrentStock) * p.UnitPrice
}

func (p Product) DamagedValue() float64 {
	return float64(p.Damaged) * p.UnitPrice
}
