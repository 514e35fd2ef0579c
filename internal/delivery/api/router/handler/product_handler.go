package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"padelpoint/internal/delivery/api/response"
	"padelpoint/internal/domain/entity"
	"padelpoint/internal/usecase"
)

const (
	defaultSearchSize = 20
	maxSearchSize     = 100
)

type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

type ProductHandler struct {
	productUC usecase.ProductUsecase
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// ProductRequest is accepted as JSON or as multipart form fields next to an "image" file.
type ProductRequest struct {
	Name        *string  `json:"name" form:"name" validate:"omitempty,min=1,max=128"`
	Description *string  `json:"description" form:"description" validate:"omitempty,max=2048"`
	Price       *float64 `json:"price" form:"price" validate:"omitempty,gt=0"`
	Cost        *float64 `json:"cost" form:"cost" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock" form:"stock" validate:"omitempty,min=0"`
	BrandID     *int64   `json:"brand" form:"brand" validate:"omitempty,gt=0"`
	SupplierID  *int64   `json:"supplier" form:"supplier" validate:"omitempty,gt=0"`
	TypeID      *int64   `json:"type" form:"type" validate:"omitempty,gt=0"`
}

// CreateProductRequest requires every commercial field.
type CreateProductRequest struct {
	Name        *string  `json:"name" form:"name" validate:"required,min=1,max=128"`
	Description *string  `json:"description" form:"description" validate:"omitempty,max=2048"`
	Price       *float64 `json:"price" form:"price" validate:"required,gt=0"`
	Cost        *float64 `json:"cost" form:"cost" validate:"required,gt=0"`
	Stock       *int     `json:"stock" form:"stock" validate:"required,min=0"`
	BrandID     *int64   `json:"brand" form:"brand" validate:"omitempty,gt=0"`
	SupplierID  *int64   `json:"supplier" form:"supplier" validate:"omitempty,gt=0"`
	TypeID      *int64   `json:"type" form:"type" validate:"omitempty,gt=0"`
}

type ValidateOperationRequest struct {
	Items []entity.StockLine `json:"items" validate:"required,min=1,dive"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	image, closer, err := formUpload(c, "image", true)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	product, err := h.productUC.Create(c.Request().Context(), usecase.ProductInput(req), image)
	if err != nil {
		return err
	}

	return response.Created(c, toProductDTO(product), "The product was created succesfully")
}

func (h *ProductHandler) FindAll(c echo.Context) error {
	filter, err := productFilter(c)
	if err != nil {
		return err
	}

	products, err := h.productUC.FindAll(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.OK(c, toProductDTOs(products), "The products were found succesfully")
}

func productFilter(c echo.Context) (entity.ProductFilter, error) {
	filter := entity.ProductFilter{
		Brand:    strings.TrimSpace(c.QueryParam("brand")),
		Type:     strings.TrimSpace(c.QueryParam("type")),
		Name:     strings.TrimSpace(c.QueryParam("name")),
		IsActive: !strings.EqualFold(c.QueryParam("isActive"), "false"),
	}

	var err error
	if filter.MinPrice, err = queryFloat(c, "minPrice"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = queryFloat(c, "maxPrice"); err != nil {
		return filter, err
	}
	if filter.Price, err = queryFloat(c, "price"); err != nil {
		return filter, err
	}
	if filter.MinStock, err = queryInt(c, "minStock"); err != nil {
		return filter, err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return filter, err
	}
	if limit != nil && *limit > 0 {
		filter.Limit = *limit
	}

	return filter, nil
}

func (h *ProductHandler) FindOne(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.FindOne(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, toProductDTO(product), "The product was found succesfully")
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	image, closer, err := formUpload(c, "image", true)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	product, err := h.productUC.Update(c.Request().Context(), id, usecase.ProductInput(req), image)
	if err != nil {
		return err
	}

	return response.OK(c, toProductDTO(product), "The product was updated succesfully")
}

func (h *ProductHandler) Remove(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.Remove(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, toProductDTO(product), "The product was unactivated succesfully")
}

func (h *ProductHandler) Search(c echo.Context) error {
	from, err := queryInt(c, "from")
	if err != nil {
		return err
	}
	size, err := queryInt(c, "size")
	if err != nil {
		return err
	}

	offset, limit := 0, defaultSearchSize
	if from != nil && *from > 0 {
		offset = *from
	}
	if size != nil && *size > 0 {
		limit = min(*size, maxSearchSize)
	}

	result, err := h.productUC.Search(c.Request().Context(), c.QueryParam("q"), offset, limit)
	if err != nil {
		return err
	}

	return response.OK(c, toSearchResultDTO(result), "The products were found succesfully")
}

func (h *ProductHandler) ValidateOperation(c echo.Context) error {
	var req ValidateOperationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.productUC.ValidateOperation(c.Request().Context(), req.Items); err != nil {
		return err
	}

	return response.OK(c, true, "The operation vas validated succesfully. Valid order")
}
