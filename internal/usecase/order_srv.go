package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"fast-food/internal/data/entity"
	"fast-food/internal/data/repository"
	"fast-food/internal/dto/request"
	"fast-food/internal/dto/response"
	"fast-food/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderCreatedResponse, error)
	ListOrders(ctx context.Context) ([]response.OrderResponse, error)
	UpdateStatus(ctx context.Context, orderID int64, req *request.UpdateOrderStatusRequest) error
}

type orderService struct {
	orders   repository.OrderRepository
	notifier NotificationService
	log      *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, notifier NotificationService, log *zap.Logger) OrderService {
	return &orderService{
		orders:   orders,
		notifier: notifier,
		log:      log.With(zap.String("service", "order")),
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderCreatedResponse, error) {
	order := &entity.Order{
		UserID:              userID,
		CustomerName:        strings.TrimSpace(req.CustomerName),
		CustomerEmail:       strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:       strings.TrimSpace(req.CustomerPhone),
		SpecialInstructions: strings.TrimSpace(req.SpecialInstructions),
		TotalAmount:         req.TotalAmount,
		Status:              entity.OrderStatusPending,
		Items:               make([]entity.OrderItem, 0, len(req.Items)),
	}

	var lineTotal float64
	for _, item := range req.Items {
		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID: item.ID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
		lineTotal += item.Price * float64(item.Quantity)
	}

	// the client total is stored as sent
	if math.Abs(lineTotal-req.TotalAmount) > 0.005 {
		s.log.Warn("Order total differs from line items",
			zap.String("user_id", userID.String()),
			zap.Float64("total_amount", req.TotalAmount),
			zap.Float64("line_total", lineTotal))
	}

	if err := s.orders.CreateWithItems(ctx, order); err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	metrics.OrdersCreated.Inc()

	return &response.OrderCreatedResponse{
		Message: "Order placed successfully",
		OrderID: order.ID,
	}, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]response.OrderResponse, error) {
	orders, err := s.orders.FindAllWithItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return response.OrdersToResponse(orders), nil
}

// UpdateStatus persists the new status, then notifies the customer. The
// notification outcome never changes the result.
func (s *orderService) UpdateStatus(ctx context.Context, orderID int64, req *request.UpdateOrderStatusRequest) error {
	status := entity.OrderStatus(req.Status)
	contact, err := s.orders.UpdateStatus(ctx, orderID, status)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("update status of order %d: %w", orderID, err)
	}

	metrics.OrderStatusUpdates.WithLabelValues(req.Status).Inc()
	s.log.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("status", req.Status))

	// a client disconnect must not abort the email
	s.notifier.SendStatusUpdate(context.WithoutCancel(ctx),
		contact.Email, contact.Name, orderID, req.Status, contact.TotalAmount)

	return nil
}
