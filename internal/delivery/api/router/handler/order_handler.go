package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"padelpoint/internal/delivery/api/response"
	deliverycontext "padelpoint/internal/delivery/context"
	"padelpoint/internal/domain/entity"
	"padelpoint/internal/usecase"
)

type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

type CreateOrderRequest struct {
	UserID        int64              `json:"userId" validate:"required,gt=0"`
	AddressID     *int64             `json:"addressId" validate:"omitempty,gt=0"`
	PaymentID     int64              `json:"paymentId" validate:"required,gt=0"`
	Products      []entity.StockLine `json:"products" validate:"required,min=1,dive"`
	PaymentMethod string             `json:"paymentMethod" validate:"omitempty,max=32"`
	IVA           *float64           `json:"IVA" validate:"omitempty,gt=0,max=1"`
}

func (h *OrderHandler) Create(c echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.Create(c.Request().Context(), usecase.CreateOrderInput{
		UserID:        req.UserID,
		AddressID:     req.AddressID,
		PaymentID:     req.PaymentID,
		Products:      req.Products,
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		IVA:           req.IVA,
	})
	if err != nil {
		return err
	}

	return response.Created(c, toOrderDTO(order), "The order was created succesfully")
}

// FindAll lists orders, optionally bounded by ?minDate= and ?maxDate=.
func (h *OrderHandler) FindAll(c echo.Context) error {
	var (
		filter entity.OrderFilter
		err    error
	)
	if filter.MinDate, err = queryDate(c, "minDate"); err != nil {
		return err
	}
	if filter.MaxDate, err = queryDate(c, "maxDate"); err != nil {
		return err
	}

	orders, err := h.orderUC.FindAll(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.OK(c, toOrderDTOs(orders), "The orders were found successfully")
}

func (h *OrderHandler) FindByUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	orders, err := h.orderUC.FindByUser(c.Request().Context(), deliverycontext.CurrentUser(c), userID)
	if err != nil {
		return err
	}

	return response.OK(c, toOrderDTOs(orders), "The orders were found successfully")
}

func (h *OrderHandler) FindOne(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.FindOne(c.Request().Context(), deliverycontext.CurrentUser(c), id)
	if err != nil {
		return err
	}

	return response.OK(c, toOrderDTO(order), "The order was found succesfully")
}

func (h *OrderHandler) Remove(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.Remove(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, toOrderDTO(order), "The recourse was deleted succesfully")
}
