package response

import (
	"time"

	"fast-food/internal/data/entity"
)

type OrderCreatedResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

type OrderItemResponse struct {
	ID         int64   `json:"id"`
	OrderID    int64   `json:"order_id"`
	MenuItemID int     `json:"menu_item_id"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type OrderResponse struct {
	ID                  int64               `json:"id"`
	UserID              string              `json:"user_id"`
	UserName            string              `json:"user_name"`
	CustomerName        string              `json:"customer_name"`
	CustomerEmail       string              `json:"customer_email"`
	CustomerPhone       string              `json:"customer_phone"`
	SpecialInstructions string              `json:"special_instructions"`
	TotalAmount         float64             `json:"total_amount"`
	Status              entity.OrderStatus  `json:"status"`
	CreatedAt           time.Time           `json:"created_at"`
	Items               []OrderItemResponse `json:"items"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:         item.ID,
			OrderID:    item.OrderID,
			MenuItemID: item.MenuItemID,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}

	return OrderResponse{
		ID:                  order.ID,
		UserID:              order.UserID.String(),
		UserName:            order.UserName,
		CustomerName:        order.CustomerName,
		CustomerEmail:       order.CustomerEmail,
		CustomerPhone:       order.CustomerPhone,
		SpecialInstructions: order.SpecialInstructions,
		TotalAmount:         order.TotalAmount,
		Status:              order.Status,
		CreatedAt:           order.CreatedAt,
		Items:               items,
	}
}

func OrdersToResponse(orders []entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, OrderToResponse(&orders[i]))
	}
	return out
}
