package service

import (
	"context"
	"time"

	"commerce-service/internal/models"
	"commerce-service/internal/store"

	"github.com/google/uuid"
)

// mockStore is an in-memory stand-in for the real store. CreateOrder mimics
// the transactional contract: on a missing item nothing is written.
type mockStore struct {
	users      map[string]models.User
	items      map[string]models.Item
	orders     map[string]models.Order
	orderItems []models.OrderItem
}

func newMockStore() *mockStore {
	return &mockStore{
		users:  make(map[string]models.User),
		items:  make(map[string]models.Item),
		orders: make(map[string]models.Order),
	}
}

func (m *mockStore) CreateUser(_ context.Context, user *models.User) error {
	user.UserID = uuid.New().String()
	m.users[user.UserID] = *user
	return nil
}

func (m *mockStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, &store.NotFoundError{Kind: "user", ID: id}
	}
	return &user, nil
}

func (m *mockStore) CreateItem(_ context.Context, item *models.Item) error {
	item.ItemID = uuid.New().String()
	m.items[item.ItemID] = *item
	return nil
}

func (m *mockStore) GetItemByID(_ context.Context, id string) (*models.Item, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, &store.NotFoundError{Kind: "item", ID: id}
	}
	return &item, nil
}

func (m *mockStore) ListItems(_ context.Context) ([]models.Item, error) {
	items := []models.Item{}
	for _, item := range m.items {
		items = append(items, item)
	}
	return items, nil
}

func (m *mockStore) UpdateItem(_ context.Context, item *models.Item) error {
	if _, ok := m.items[item.ItemID]; !ok {
		return &store.NotFoundError{Kind: "item", ID: item.ItemID}
	}
	m.items[item.ItemID] = *item
	return nil
}

func (m *mockStore) DeleteItem(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return &store.NotFoundError{Kind: "item", ID: id}
	}
	delete(m.items, id)
	return nil
}

func (m *mockStore) CreateOrder(_ context.Context, order *models.Order, lines []models.OrderLine) error {
	for _, line := range lines {
		if _, ok := m.items[line.ItemID]; !ok {
			return &store.NotFoundError{Kind: "item", ID: line.ItemID}
		}
	}

	order.OrderID = uuid.New().String()
	order.Status = models.OrderStatusPending
	order.CreatedAt = time.Now().UTC()
	m.orders[order.OrderID] = *order

	for _, line := range lines {
		m.orderItems = append(m.orderItems, models.OrderItem{
			ID:       uuid.New().String(),
			OrderID:  order.OrderID,
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		})
	}
	return nil
}

func (m *mockStore) GetOrderByID(_ context.Context, id string) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, &store.NotFoundError{Kind: "order", ID: id}
	}
	return &order, nil
}

// mockItemCache records cache traffic for assertions
type mockItemCache struct {
	entries     map[string]models.Item
	invalidated []string
	getCalls    int
	setCalls    int
}

func newMockItemCache() *mockItemCache {
	return &mockItemCache{entries: make(map[string]models.Item)}
}

func (c *mockItemCache) GetItem(_ context.Context, id string) (*models.Item, error) {
	c.getCalls++
	item, ok := c.entries[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (c *mockItemCache) SetItem(_ context.Context, item *models.Item) error {
	c.setCalls++
	c.entries[item.ItemID] = *item
	return nil
}

func (c *mockItemCache) InvalidateItem(_ context.Context, id string) error {
	c.invalidated = append(c.invalidated, id)
	delete(c.entries, id)
	return nil
}
