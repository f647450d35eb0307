package domain

import "time"

// Order is a purchase record. Product fields are a snapshot taken at
// placement time; later product edits do not change the order.
type Order struct {
	ID          int
	UserID      int
	Username    string
	ProductID   int
	ProductName string
	Quantity    int
	UnitPrice   float64
	TotalPrice  float64
	Status      string
	OrderDate   time.Time
	UpdatedAt   time.Time
}

// Orders are finalized at creation; there is no state machine.
const OrderStatusCompleted = "completed"
