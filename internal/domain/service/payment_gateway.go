package service

import (
	"context"
	"errors"

	"padelpoint/internal/domain/entity"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrGatewayUnavailable covers transport failures and unreadable gateway responses.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// PaymentGateway is the external payment processor.
type PaymentGateway interface {
	GetPayment(ctx context.Context, paymentID int64) (*entity.PaymentInfo, error)
	CreatePreference(ctx context.Context, input *entity.PreferenceInput) (*entity.Preference, error)
}
