package request

type OrderItemRequest struct {
	ID       int     `json:"id" validate:"gt=0"`
	Quantity int     `json:"quantity" validate:"gt=0,lte=10000"`
	Price    float64 `json:"price" validate:"gte=0,lte=99999999.99"`
}

type CreateOrderRequest struct {
	Items               []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	CustomerName        string             `json:"customer_name" validate:"required,max=100"`
	CustomerEmail       string             `json:"customer_email" validate:"required,email,max=255"`
	CustomerPhone       string             `json:"customer_phone" validate:"max=30"`
	SpecialInstructions string             `json:"special_instructions"`
	TotalAmount         float64            `json:"total_amount" validate:"gte=0,lte=99999999.99"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed preparing ready delivered cancelled"`
}
