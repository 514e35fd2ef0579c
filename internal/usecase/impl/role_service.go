package impl

import (
	"context"
	"log/slog"
	"strings"

	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/errors"
	"padelpoint/internal/usecase"

	"go.uber.org/fx"
)

type roleService struct {
	roleRepo repository.RoleRepository
	logger   *slog.Logger
}

type RoleServiceParams struct {
	fx.In

	RoleRepo repository.RoleRepository
	Logger   *slog.Logger
}

func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		roleRepo: params.RoleRepo,
		logger:   params.Logger,
	}
}

func (srv *roleService) List(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.roleRepo.List(ctx)
	if err != nil {
		return nil, internalError(err, "Error loading the roles")
	}

	return roles, nil
}

func (srv *roleService) FindByID(ctx context.Context, id int64) (*entity.Role, error) {
	role, err := srv.roleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, domainerrors.NewNotFound("The role with id '%d' was not found", id)
		}

		return nil, internalError(err, "Error finding the role")
	}

	return role, nil
}

func (srv *roleService) Update(ctx context.Context, id int64, name string) (*entity.Role, error) {
	role, err := srv.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role.Name = strings.TrimSpace(name)
	if err := srv.roleRepo.Update(ctx, role); err != nil {
		return nil, internalError(err, "Error updating the role")
	}

	loggerFor(ctx, srv.logger).Info("Role renamed", slog.Int64("role_id", id), slog.String("name", role.Name))

	return role, nil
}
