package service

import (
	"context"

	"commerce-service/internal/models"
	"commerce-service/internal/util"

	"go.uber.org/zap"
)

// ItemStore is the persistence surface the item service needs
type ItemStore interface {
	CreateItem(ctx context.Context, item *models.Item) error
	GetItemByID(ctx context.Context, id string) (*models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, id string) error
}

// ItemCache caches items by id; a nil cache disables caching
type ItemCache interface {
	GetItem(ctx context.Context, id string) (*models.Item, error)
	SetItem(ctx context.Context, item *models.Item) error
	InvalidateItem(ctx context.Context, id string) error
}

// ItemService handles catalog item business logic
type ItemService struct {
	store  ItemStore
	cache  ItemCache
	logger *zap.Logger
}

// NewItemService creates a new item service
func NewItemService(store ItemStore, cache ItemCache) *ItemService {
	return &ItemService{
		store:  store,
		cache:  cache,
		logger: util.GetLogger(),
	}
}

// CreateItemRequest represents a request to create an item. Price is a
// pointer so an explicit 0 satisfies the required binding.
type CreateItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
}

// UpdateItemRequest carries the optionally-present fields of a partial
// update. Empty/zero values are treated as absent and never overwrite the
// stored field; the wire format cannot express "clear this field".
type UpdateItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// CreateItem persists a new catalog item
func (s *ItemService) CreateItem(ctx context.Context, req *CreateItemRequest) (*models.Item, error) {
	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	}

	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	util.ItemsCreatedTotal.Inc()
	s.logger.Info("Item created", zap.String("item_id", item.ItemID))
	return item, nil
}

// GetItem retrieves an item, consulting the cache first
func (s *ItemService) GetItem(ctx context.Context, id string) (*models.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.GetItem(ctx, id)
		if err != nil {
			s.logger.Warn("Item cache read failed", zap.String("item_id", id), zap.Error(err))
		} else if cached != nil {
			util.ItemCacheHits.Inc()
			return cached, nil
		}
		util.ItemCacheMisses.Inc()
	}

	item, err := s.store.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetItem(ctx, item); err != nil {
			s.logger.Warn("Item cache write failed", zap.String("item_id", id), zap.Error(err))
		}
	}

	return item, nil
}

// ListItems retrieves all items
func (s *ItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.store.ListItems(ctx)
}

// UpdateItem applies a partial update: only non-zero request fields
// overwrite the stored value
func (s *ItemService) UpdateItem(ctx context.Context, id string, req *UpdateItemRequest) (*models.Item, error) {
	item, err := s.store.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Price != 0 {
		item.Price = req.Price
	}

	if err := s.store.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.logger.Info("Item updated", zap.String("item_id", id))
	return item, nil
}

// DeleteItem removes an item
func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	if err := s.store.DeleteItem(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.logger.Info("Item deleted", zap.String("item_id", id))
	return nil
}

func (s *ItemService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateItem(ctx, id); err != nil {
		s.logger.Warn("Item cache invalidation failed", zap.String("item_id", id), zap.Error(err))
	}
}
