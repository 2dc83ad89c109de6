package models

import "time"

// Event types published to the broker
const (
	EventTypeOrderCreated = "order.created"
	EventTypeUserCreated  = "user.created"
)

// BaseEvent contains fields common to all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderCreatedEvent is published after an order and its lines commit
type OrderCreatedEvent struct {
	BaseEvent
	OrderID string      `json:"order_id"`
	UserID  string      `json:"user_id"`
	Status  string      `json:"status"`
	Lines   []OrderLine `json:"lines"`
}

// UserCreatedEvent is published after a user is persisted
type UserCreatedEvent struct {
	BaseEvent
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
