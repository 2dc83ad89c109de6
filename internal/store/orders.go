package store

import (
	"context"
	"database/sql"
	"fmt"

	"commerce-service/internal/models"

	"github.com/google/uuid"
)

// CreateOrder persists an order together with all of its lines in one
// transaction. Each requested item is looked up inside the transaction, in
// input order; the first missing item aborts the whole transaction, so either
// the order and every line commit or nothing does. Lines after a missing item
// are never examined. On success the order's generated identifier, creation
// time and status are filled in.
func (s *Store) CreateOrder(ctx context.Context, order *models.Order, lines []models.OrderLine) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	order.OrderID = uuid.New().String()
	order.Status = models.OrderStatusPending

	err = tx.GetContext(ctx, &order.CreatedAt,
		"INSERT INTO orders (order_id, user_id, status) VALUES ($1, $2, $3) RETURNING created_at",
		order.OrderID, order.UserID, order.Status)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, line := range lines {
		var exists bool
		err = tx.GetContext(ctx, &exists,
			"SELECT EXISTS(SELECT 1 FROM items WHERE item_id = $1)", line.ItemID)
		if err != nil {
			return fmt.Errorf("check item: %w", err)
		}
		if !exists {
			return notFound("item", line.ItemID)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO order_items (id, order_id, item_id, quantity) VALUES ($1, $2, $3, $4)",
			uuid.New().String(), order.OrderID, line.ItemID, line.Quantity)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

// GetOrderByID retrieves an order by ID
func (s *Store) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE order_id = $1", id)
	if err == sql.ErrNoRows {
		return nil, notFound("order", id)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderItemsByOrderID retrieves all lines of an order
func (s *Store) GetOrderItemsByOrderID(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := s.db.SelectContext(ctx, &items,
		"SELECT * FROM order_items WHERE order_id = $1", orderID)
	return items, err
}
