package adaptor

import (
	"net/http"

	"fast-food/internal/dto/request"
	"fast-food/internal/usecase"
	"fast-food/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Create handles POST /api/orders (protected)
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Access token required")
		return
	}

	var req request.CreateOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.PlaceOrder(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "place order")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// List handles GET /api/admin/orders (admin)
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, orders)
}

// UpdateStatus handles PUT /api/admin/orders/{id}/status (admin)
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	var req request.UpdateOrderStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.UpdateStatus(r.Context(), orderID, &req); err != nil {
		handleServiceError(w, h.log, err, "update order status")
		return
	}

	utils.ResponseMessage(w, "Order status updated")
}
