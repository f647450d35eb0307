package dto

import (
	"time"

	"stockroom/internal/domain"
)

type PlaceOrderRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type OrderDTO struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Username    string    `json:"username"`
	ProductID   int       `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	TotalPrice  float64   `json:"totalPrice"`
	Status      string    `json:"status"`
	OrderDate   time.Time `json:"orderDate"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewOrderDTO(o domain.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID,
		UserID:      o.UserID,
		Username:    o.Username,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		UnitPrice:   o.UnitPrice,
		TotalPrice:  o.TotalPrice,
		Status:      o.Status,
		OrderDate:   o.OrderDate,
		UpdatedAt:   o.UpdatedAt,
	}
}

type OrderListResponse struct {
	Orders []OrderDTO `json:"orders"`
	Count  int        `json:"count"`
}
