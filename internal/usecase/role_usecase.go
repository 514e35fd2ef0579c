package usecase

import (
	"context"

	"padelpoint/internal/domain/entity"
)

type RoleUsecase interface {
	List(ctx context.Context) ([]*entity.Role, error)
	FindByID(ctx context.Context, id int64) (*entity.Role, error)
	Update(ctx context.Context, id int64, name string) (*entity.Role, error)
}
