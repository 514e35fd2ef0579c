package usecase

import (
	"context"

	"padelpoint/internal/domain/entity"
)

// AddressUsecase lets users manage their own addresses. Admins may manage any.
type AddressUsecase interface {
	Create(ctx context.Context, caller *entity.TokenPayload, userID int64, input AddressInput) (*entity.Address, error)
	FindByID(ctx context.Context, caller *entity.TokenPayload, id int64) (*entity.Address, error)
	Update(ctx context.Context, caller *entity.TokenPayload, id int64, input AddressInput) (*entity.Address, error)
	Remove(ctx context.Context, caller *entity.TokenPayload, id int64) (*entity.Address, error)
}
