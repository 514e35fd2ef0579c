package usecase

import (
	"context"
	"fmt"

	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
)

// retryableError marks a failure caused by transient infrastructure.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps an error so event consumers redeliver the message.
func NewRetryableError(err error) error {
	return &retryableError{err: err}
}

func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// OrderNotificationUsecase reacts to committed orders.
type OrderNotificationUsecase interface {
	// NotifyOrderCreated emails the store admin a summary of the order.
	NotifyOrderCreated(ctx context.Context, event *service.OrderCreatedEvent) error
}
