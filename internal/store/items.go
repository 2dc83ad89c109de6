package store

import (
	"context"
	"database/sql"

	"commerce-service/internal/models"

	"github.com/google/uuid"
)

// CreateItem persists a new catalog item, assigning its identifier
func (s *Store) CreateItem(ctx context.Context, item *models.Item) error {
	item.ItemID = uuid.New().String()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO items (item_id, name, description, price) VALUES ($1, $2, $3, $4)",
		item.ItemID, item.Name, item.Description, item.Price)
	return err
}

// GetItemByID retrieves an item by ID
func (s *Store) GetItemByID(ctx context.Context, id string) (*models.Item, error) {
	var item models.Item
	err := s.db.GetContext(ctx, &item, "SELECT * FROM items WHERE item_id = $1", id)
	if err == sql.ErrNoRows {
		return nil, notFound("item", id)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems retrieves all items
func (s *Store) ListItems(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	err := s.db.SelectContext(ctx, &items, "SELECT * FROM items ORDER BY item_id")
	return items, err
}

// UpdateItem overwrites all stored fields of an item
func (s *Store) UpdateItem(ctx context.Context, item *models.Item) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE items SET name = $1, description = $2, price = $3 WHERE item_id = $4",
		item.Name, item.Description, item.Price, item.ItemID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound("item", item.ItemID)
	}
	return nil
}

// DeleteItem removes an item by ID
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE item_id = $1", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound("item", id)
	}
	return nil
}
