package request

import (
	"strings"
	"testing"

	"fast-food/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func validOrder() *CreateOrderRequest {
	return &CreateOrderRequest{
		Items: []OrderItemRequest{
			{ID: 1, Quantity: 2, Price: 250},
			{ID: 4, Quantity: 1, Price: 120},
		},
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		TotalAmount:   620,
	}
}

func TestCreateOrderRequest_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateOrderRequest)
		field  string
	}{
		{"no items", func(r *CreateOrderRequest) { r.Items = nil }, "items"},
		{"zero quantity", func(r *CreateOrderRequest) { r.Items[0].Quantity = 0 }, "items[0].quantity"},
		{"quantity above int4", func(r *CreateOrderRequest) { r.Items[0].Quantity = 100000 }, "items[0].quantity"},
		{"negative price", func(r *CreateOrderRequest) { r.Items[1].Price = -1 }, "items[1].price"},
		{"price above numeric(10,2)", func(r *CreateOrderRequest) { r.Items[1].Price = 1e9 }, "items[1].price"},
		{"negative total", func(r *CreateOrderRequest) { r.TotalAmount = -5 }, "total_amount"},
		{"total above numeric(10,2)", func(r *CreateOrderRequest) { r.TotalAmount = 1e9 }, "total_amount"},
		{"bad email", func(r *CreateOrderRequest) { r.CustomerEmail = "asha" }, "customer_email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrder()
			tt.mutate(req)

			errs := utils.ValidateStruct(req)
			assert.Contains(t, errs, tt.field)
		})
	}

	assert.Nil(t, utils.ValidateStruct(validOrder()))
}

func TestRegisterRequest_PasswordBytes(t *testing.T) {
	req := RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "pw123"}
	assert.Nil(t, utils.ValidateStruct(req))

	req.Password = strings.Repeat("é", 40)
	assert.Equal(t, map[string]string{"password": "Maximum length is 72 bytes"}, utils.ValidateStruct(req))
}

func TestUpdateOrderStatusRequest_UnknownStatus(t *testing.T) {
	errs := utils.ValidateStruct(UpdateOrderStatusRequest{Status: "teleported"})
	assert.Contains(t, errs, "status")
}
