package usecase

import (
	"context"

	"padelpoint/internal/domain/entity"
)

// PreferenceInput is the checkout a signed-in buyer asks for.
type PreferenceInput struct {
	UserID    int64
	AddressID int64
	Items     []entity.StockLine
}

type PaymentUsecase interface {
	CreatePreference(ctx context.Context, caller *entity.TokenPayload, input PreferenceInput) (*entity.Preference, error)
}
