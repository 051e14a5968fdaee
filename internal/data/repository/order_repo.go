package repository

import (
	"context"
	"errors"
	"fmt"

	"fast-food/internal/data/entity"
	"fast-food/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *entity.Order) error
	FindAllWithItems(ctx context.Context) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.OrderContact, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// CreateWithItems writes the order header and every line item in one transaction.
// On success order.ID and order.CreatedAt are populated.
func (r *orderRepository) CreateWithItems(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin order transaction", zap.Error(err))
		return fmt.Errorf("begin order transaction: %w", err)
	}

	orderQuery := `
		INSERT INTO orders (user_id, customer_name, customer_email, customer_phone,
		                    special_instructions, total_amount, status)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
		RETURNING id, created_at
	`

	err = tx.QueryRow(ctx, orderQuery,
		order.UserID,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.SpecialInstructions,
		order.TotalAmount,
		string(order.Status),
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to insert order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("insert order for user %s: %w", order.UserID.String(), err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, menu_item_id, quantity, price)
		VALUES ($1, $2, $3, $4)
	`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		if _, err := tx.Exec(ctx, itemQuery, order.ID, item.MenuItemID, item.Quantity, item.Price); err != nil {
			tx.Rollback(ctx)
			r.log.Error("Failed to insert order item",
				zap.Error(err),
				zap.Int64("order_id", order.ID),
				zap.Int("menu_item_id", item.MenuItemID),
			)
			return fmt.Errorf("insert item %d for order %d: %w", item.MenuItemID, order.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit order", zap.Error(err), zap.Int64("order_id", order.ID))
		return fmt.Errorf("commit order %d: %w", order.ID, err)
	}

	r.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int("items", len(order.Items)),
	)
	return nil
}

// FindAllWithItems returns every order newest first, each with its line items.
// Items are fetched with a single batched query.
func (r *orderRepository) FindAllWithItems(ctx context.Context) ([]entity.Order, error) {
	query := `
		SELECT o.id, o.user_id, COALESCE(u.name, ''), o.customer_name, o.customer_email,
		       o.customer_phone, COALESCE(o.special_instructions, ''), o.total_amount,
		       o.status, o.created_at
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC, o.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query orders", zap.Error(err))
		return nil, fmt.Errorf("find all orders: %w", err)
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.UserName,
			&o.CustomerName,
			&o.CustomerEmail,
			&o.CustomerPhone,
			&o.SpecialInstructions,
			&o.TotalAmount,
			&o.Status,
			&o.CreatedAt,
		); err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		o.Items = make([]entity.OrderItem, 0)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	items, err := r.findItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return orders, nil
}

func (r *orderRepository) findItems(ctx context.Context, orderIDs []int64) ([]entity.OrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.menu_item_id, COALESCE(mi.name, ''), oi.quantity, oi.price
		FROM order_items oi
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.id
	`

	rows, err := r.db.Query(ctx, query, orderIDs)
	if err != nil {
		r.log.Error("Failed to query order items", zap.Error(err), zap.Int("orders", len(orderIDs)))
		return nil, fmt.Errorf("find items for %d orders: %w", len(orderIDs), err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.MenuItemID,
			&item.ItemName,
			&item.Quantity,
			&item.Price,
		); err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order item rows: %w", err)
	}

	return items, nil
}

// UpdateStatus sets the status and returns the contact details stored on the order.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.OrderContact, error) {
	query := `
		UPDATE orders
		SET status = $2
		WHERE id = $1
		RETURNING customer_email, customer_name, total_amount
	`

	contact := entity.OrderContact{OrderID: orderID}
	err := r.db.QueryRow(ctx, query, orderID, string(status)).Scan(
		&contact.Email,
		&contact.Name,
		&contact.TotalAmount,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.Int64("order_id", orderID),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update order %d status: %w", orderID, err)
	}

	return &contact, nil
}
