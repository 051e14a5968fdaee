package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID                  int64       `db:"id"`
	UserID              uuid.UUID   `db:"user_id"`
	UserName            string      `db:"user_name"`
	CustomerName        string      `db:"customer_name"`
	CustomerEmail       string      `db:"customer_email"`
	CustomerPhone       string      `db:"customer_phone"`
	SpecialInstructions string      `db:"special_instructions"`
	TotalAmount         float64     `db:"total_amount"`
	Status              OrderStatus `db:"status"`
	CreatedAt           time.Time   `db:"created_at"`
	Items               []OrderItem
}

type OrderItem struct {
	ID         int64   `db:"id"`
	OrderID    int64   `db:"order_id"`
	MenuItemID int     `db:"menu_item_id"`
	ItemName   string  `db:"item_name"`
	Quantity   int     `db:"quantity"`
	Price      float64 `db:"price"`
}

// OrderContact is what a status notification needs to reach the customer.
type OrderContact struct {
	OrderID     int64
	Email       string
	Name        string
	TotalAmount float64
}
