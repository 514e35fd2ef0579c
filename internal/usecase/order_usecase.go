package usecase

import (
	"context"

	"padelpoint/internal/domain/entity"
)

// CreateOrderInput defines a purchase to record after payment.
type CreateOrderInput struct {
	UserID        int64
	AddressID     *int64
	PaymentID     int64
	Products      []entity.StockLine
	PaymentMethod string

	// IVA overrides the configured tax rate when non-nil.
	IVA *float64
}

// OrderUsecase places and queries orders.
type OrderUsecase interface {
	// Create validates payment, buyer, address and stock, then persists the order atomically.
	Create(ctx context.Context, input CreateOrderInput) (*entity.Order, error)

	FindAll(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error)
	FindByUser(ctx context.Context, caller *entity.TokenPayload, userID int64) ([]*entity.Order, error)
	FindOne(ctx context.Context, caller *entity.TokenPayload, id int64) (*entity.Order, error)

	// Remove deletes the order and its lines.
	Remove(ctx context.Context, id int64) (*entity.Order, error)
}
