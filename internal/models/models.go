package models

import "time"

// User represents a registered customer
type User struct {
	UserID string `db:"user_id" json:"user_id"`
	Email  string `db:"email" json:"email"`
	Name   string `db:"name" json:"name"`
}

// Item represents a sellable catalog item
type Item struct {
	ItemID      string  `db:"item_id" json:"item_id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description,omitempty"`
	Price       float64 `db:"price" json:"price"`
}

// Order represents a customer order
type Order struct {
	OrderID   string    `db:"order_id" json:"order_id"`
	UserID    string    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Status    string    `db:"status" json:"status"`
}

// OrderItem represents one line of an order
type OrderItem struct {
	ID       string `db:"id" json:"id"`
	OrderID  string `db:"order_id" json:"order_id"`
	ItemID   string `db:"item_id" json:"item_id"`
	Quantity int    `db:"quantity" json:"quantity"`
}

// OrderLine is one requested (item, quantity) pair on order creation.
// Quantity is stored as given: zero, negative and duplicate entries all
// produce their own order_items rows.
type OrderLine struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// OrderStatusPending is the only status the system ever assigns; orders
// have no state transitions after creation.
const OrderStatusPending = "pending"
