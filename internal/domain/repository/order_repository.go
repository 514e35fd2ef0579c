package repository

import (
	"context"
	"errors"

	"padelpoint/internal/domain/entity"
)

var (
	ErrOrderNotFound = errors.New("order not found")

	// ErrDuplicatePaymentID is returned when an order with the same payment id already exists.
	ErrDuplicatePaymentID = errors.New("payment id already used by another order")
)

// OrderRepository handles order headers and their lines.
type OrderRepository interface {
	// Create persists the order header only.
	Create(ctx context.Context, order *entity.Order) error

	CreateLine(ctx context.Context, line *entity.OrderLine) error

	// FindByID loads the order with its lines, products, user and address.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	ExistsByPaymentID(ctx context.Context, paymentID int64) (bool, error)

	List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error)

	// Delete removes the order and, by cascade, its lines.
	Delete(ctx context.Context, id int64) error
}
