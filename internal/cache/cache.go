package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"commerce-service/internal/models"

	"github.com/go-redis/redis/v8"
)

// Client is a read-through cache for catalog items. Every method is
// best-effort: a cache failure never fails the request, callers fall back to
// the store.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewClient connects to Redis and verifies the connection
func NewClient(addr, password string, db int, ttl time.Duration) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

func itemKey(id string) string {
	return fmt.Sprintf("item:%s", id)
}

// GetItem returns the cached item, or nil on a miss or any cache error
func (c *Client) GetItem(ctx context.Context, id string) (*models.Item, error) {
	data, err := c.rdb.Get(ctx, itemKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var item models.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// SetItem stores an item with the configured TTL
func (c *Client) SetItem(ctx context.Context, item *models.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, itemKey(item.ItemID), data, c.ttl).Err()
}

// InvalidateItem drops an item from the cache after an update or delete
func (c *Client) InvalidateItem(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, itemKey(id)).Err()
}
