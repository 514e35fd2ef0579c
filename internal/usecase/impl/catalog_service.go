package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/errors"
	"padelpoint/internal/usecase"

	"go.uber.org/fx"
)

// catalogService manages every name-only lookup table through one repository.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) Create(ctx context.Context, kind entity.CatalogKind, name string) (*entity.CatalogItem, error) {
	item := &entity.CatalogItem{Name: strings.TrimSpace(name)}
	if err := srv.catalogRepo.Create(ctx, kind, item); err != nil {
		if errors.Is(err, repository.ErrCatalogNameTaken) {
			return nil, domainerrors.NewBadRequest("The %s '%s' already exists", kind, item.Name)
		}

		return nil, internalError(err, fmt.Sprintf("Error creating the %s", kind))
	}

	loggerFor(ctx, srv.logger).Info("Catalog item created", slog.String("kind", kind.String()), slog.Int64("id", item.ID))

	return item, nil
}

func (srv *catalogService) List(ctx context.Context, kind entity.CatalogKind) ([]*entity.CatalogItem, error) {
	items, err := srv.catalogRepo.List(ctx, kind)
	if err != nil {
		return nil, internalError(err, fmt.Sprintf("Error loading the %s list", kind))
	}

	return items, nil
}

func (srv *catalogService) FindByID(ctx context.Context, kind entity.CatalogKind, id int64) (*entity.CatalogItem, error) {
	item, err := srv.catalogRepo.FindByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogItemNotFound) {
			return nil, domainerrors.NewNotFound("The %s with id '%d' was not found", kind, id)
		}

		return nil, internalError(err, fmt.Sprintf("Error finding the %s", kind))
	}

	return item, nil
}

func (srv *catalogService) Update(ctx context.Context, kind entity.CatalogKind, id int64, name string) (*entity.CatalogItem, error) {
	item, err := srv.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(name)
	if err := srv.catalogRepo.Update(ctx, kind, item); err != nil {
		if errors.Is(err, repository.ErrCatalogNameTaken) {
			return nil, domainerrors.NewBadRequest("The %s '%s' already exists", kind, item.Name)
		}

		return nil, internalError(err, fmt.Sprintf("Error updating the %s", kind))
	}

	return item, nil
}

// Remove hard-deletes the item. Items still referenced are rejected by the store.
func (srv *catalogService) Remove(ctx context.Context, kind entity.CatalogKind, id int64) (*entity.CatalogItem, error) {
	item, err := srv.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if err := srv.catalogRepo.Delete(ctx, kind, id); err != nil {
		return nil, internalError(err, fmt.Sprintf("Error deleting the %s with id '%d'", kind, id))
	}

	return item, nil
}
