package service

import (
	"context"
	"time"
)

// OrderCreatedEvent is published once an order has been committed.
type OrderCreatedEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID   int64     `json:"order_id"`
	UserID    int64     `json:"user_id"`
	PaymentID int64     `json:"payment_id"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderCreated publishes an order event for async processing
	PublishOrderCreated(ctx context.Context, event *OrderCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
