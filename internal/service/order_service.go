package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"commerce-service/internal/broker"
	"commerce-service/internal/models"
	"commerce-service/internal/store"
	"commerce-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderStore is the persistence surface the order service needs. CreateOrder
// must persist the order and all of its lines atomically.
type OrderStore interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateOrder(ctx context.Context, order *models.Order, lines []models.OrderLine) error
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
}

// OrderService handles order business logic
type OrderService struct {
	store  OrderStore
	events *broker.EventPublisher
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(store OrderStore, events *broker.EventPublisher) *OrderService {
	return &OrderService{
		store:  store,
		events: events,
		logger: util.GetLogger(),
	}
}

// CreateOrderRequest represents a request to create an order. Items may be
// empty; quantities are accepted as given.
type CreateOrderRequest struct {
	UserID string             `json:"user_id" binding:"required"`
	Items  []models.OrderLine `json:"items" binding:"required"`
}

// CreateOrder validates the owning user, then persists the order and all of
// its lines in one transaction. A missing user or a missing item leaves the
// store untouched.
func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.CreateOrder")
	defer span.End()

	if _, err := s.store.GetUserByID(ctx, req.UserID); err != nil {
		util.OrdersFailedTotal.WithLabelValues("user_not_found").Inc()
		return nil, err
	}

	order := &models.Order{UserID: req.UserID}

	if err := s.store.CreateOrder(ctx, order, req.Items); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.OrdersFailedTotal.WithLabelValues("item_not_found").Inc()
		} else {
			util.OrdersFailedTotal.WithLabelValues("db_error").Inc()
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	util.OrdersCreatedTotal.Inc()
	s.logger.Info("Order created",
		zap.String("order_id", order.OrderID),
		zap.String("user_id", order.UserID),
		zap.Int("lines", len(req.Items)))

	if s.events != nil {
		event := &models.OrderCreatedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeOrderCreated,
				Timestamp: time.Now(),
			},
			OrderID: order.OrderID,
			UserID:  order.UserID,
			Status:  order.Status,
			Lines:   req.Items,
		}
		if err := s.events.PublishOrderCreated(ctx, event); err != nil {
			s.logger.Error("Failed to publish order.created event", zap.Error(err))
		}
	}

	return order, nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.store.GetOrderByID(ctx, id)
}
