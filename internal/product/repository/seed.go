package repository

import (
	"time"

	"stockroom/internal/domain"
)

// SeedProducts is the catalog the service ships with.
func SeedProducts(now time.Time) []domain.Product {
	return []domain.Product{
		{
			ID:            1,
			Name:          "Vitrified Tiles 600x600mm",
			SKU:           "VT-600-001",
			Category:      "Flooring",
			CurrentStock:  450,
			MinStock:      200,
			MaxStock:      1000,
			UnitPrice:     450,
			LastRestocked: "2024-12-20",
			TotalSold:     2340,
			Damaged:       12,
			CreatedAt:     now,
		},
		{
			ID:            2,
			Name:          "LED Panel Light 2x2",
			SKU:           "LED-2X2-002",
			Category:      "Lighting",
			CurrentStock:  85,
			MinStock:      100,
			MaxStock:      500,
			UnitPrice:     1200,
			LastRestocked: "2024-12-15",
			TotalSold:     456,
			Damaged:       3,
			CreatedAt:     now,
		},
		{
			ID:            3,
			Name:          "Laminate Sheet Glossy",
			SKU:           "LAM-GL-003",
			Category:      "Laminates",
			CurrentStock:  750,
			MinStock:      300,
			MaxStock:      1200,
			UnitPrice:     850,
			LastRestocked: "2024-12-22",
			TotalSold:     1890,
			Damaged:       8,
			CreatedAt:     now,
		},
	}
}
