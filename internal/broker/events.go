package broker

import (
	"context"
	"fmt"

	"commerce-service/internal/models"
)

// EventPublisher publishes domain events after commits. Callers treat publish
// failures as non-fatal: the write already committed.
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishOrderCreated publishes an order.created event
func (ep *EventPublisher) PublishOrderCreated(ctx context.Context, event *models.OrderCreatedEvent) error {
	key := fmt.Sprintf("order-%s", event.OrderID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishUserCreated publishes a user.created event
func (ep *EventPublisher) PublishUserCreated(ctx context.Context, event *models.UserCreatedEvent) error {
	key := fmt.Sprintf("user-%s", event.UserID)
	return ep.producer.PublishEvent(ctx, key, event)
}
