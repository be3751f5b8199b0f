package model

// Order is a stock-decrementing transaction recorded by the backend. Orders
// are created through order placement only and never mutated or deleted here.
type Order struct {
	ID              int64     `json:"id"`
	ProductID       int64     `json:"productId"`
	ProductName     string    `json:"productName"`
	QuantityOrdered int       `json:"quantityOrdered"`
	OrderDate       Timestamp `json:"orderDate"`
}

// OrderDto is the outbound payload for order placement. Quantity must be at
// least 1; the upper bound (current stock) is enforced by the backend.
type OrderDto struct {
	ProductID int64 `json:"productId" form:"productId" validate:"required"`
	Quantity  int   `json:"quantity" form:"quantity" validate:"min=1"`
}
