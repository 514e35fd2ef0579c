package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"padelpoint/internal/delivery/api/response"
	"padelpoint/internal/domain/entity"
	"padelpoint/internal/usecase"
)

// CatalogHandler serves one lookup table. The router mounts one per kind.
type CatalogHandler struct {
	kind      entity.CatalogKind
	catalogUC usecase.CatalogUsecase
}

// CatalogHandlers bundles the handlers of every lookup table.
type CatalogHandlers struct {
	Brand    *CatalogHandler
	Supplier *CatalogHandler
	Type     *CatalogHandler
	IDType   *CatalogHandler
}

func NewCatalogHandlers(catalogUC usecase.CatalogUsecase) *CatalogHandlers {
	return &CatalogHandlers{
		Brand:    NewCatalogHandler(entity.CatalogBrand, catalogUC),
		Supplier: NewCatalogHandler(entity.CatalogSupplier, catalogUC),
		Type:     NewCatalogHandler(entity.CatalogProductType, catalogUC),
		IDType:   NewCatalogHandler(entity.CatalogIDType, catalogUC),
	}
}

func NewCatalogHandler(kind entity.CatalogKind, catalogUC usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{kind: kind, catalogUC: catalogUC}
}

type CatalogItemRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

func (h *CatalogHandler) message(action string) string {
	return fmt.Sprintf("The %s was %s succesfully", h.kind, action)
}

func (h *CatalogHandler) Create(c echo.Context) error {
	var req CatalogItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.catalogUC.Create(c.Request().Context(), h.kind, req.Name)
	if err != nil {
		return err
	}

	return response.Created(c, toCatalogItemDTO(item), h.message("created"))
}

func (h *CatalogHandler) List(c echo.Context) error {
	items, err := h.catalogUC.List(c.Request().Context(), h.kind)
	if err != nil {
		return err
	}

	return response.OK(c, toCatalogItemDTOs(items), fmt.Sprintf("The %s list was loaded succesfully", h.kind))
}

func (h *CatalogHandler) FindByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.catalogUC.FindByID(c.Request().Context(), h.kind, id)
	if err != nil {
		return err
	}

	return response.OK(c, toCatalogItemDTO(item), h.message("found"))
}

func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CatalogItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.catalogUC.Update(c.Request().Context(), h.kind, id, req.Name)
	if err != nil {
		return err
	}

	return response.OK(c, toCatalogItemDTO(item), h.message("updated"))
}

func (h *CatalogHandler) Remove(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.catalogUC.Remove(c.Request().Context(), h.kind, id)
	if err != nil {
		return err
	}

	return response.OK(c, toCatalogItemDTO(item), h.message("deleted"))
}
