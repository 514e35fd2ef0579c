package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"padelpoint/internal/delivery/api/response"
	deliverycontext "padelpoint/internal/delivery/context"
	"padelpoint/internal/domain/entity"
	"padelpoint/internal/usecase"
)

type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
}

type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
}

func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{paymentUC: params.PaymentUC}
}

type PreferenceRequest struct {
	UserID    int64              `json:"userId" validate:"required,gt=0"`
	AddressID int64              `json:"addressId" validate:"required,gt=0"`
	Items     []entity.StockLine `json:"items" validate:"required,min=1,dive"`
}

func (h *PaymentHandler) CreatePreference(c echo.Context) error {
	var req PreferenceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	preference, err := h.paymentUC.CreatePreference(c.Request().Context(), deliverycontext.CurrentUser(c), usecase.PreferenceInput(req))
	if err != nil {
		return err
	}

	return response.Created(c, &PreferenceDTO{ID: preference.ID, InitPoint: preference.InitPoint},
		"The embeded form was created succesfully")
}
