package domain

import "time"

type OrderCreatedEvent struct {
	OrderID     uint64    `json:"orderId"`
	UserID      string    `json:"userId"`
	TotalAmount string    `json:"totalAmount"`
	ItemCount   int       `json:"itemCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type OrderCancelledEvent struct {
	OrderID     uint64    `json:"orderId"`
	UserID      string    `json:"userId"`
	CancelledAt time.Time `json:"cancelledAt"`
}
