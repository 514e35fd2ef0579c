package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"padelpoint/internal/delivery/api/response"
	deliverycontext "padelpoint/internal/delivery/context"
	"padelpoint/internal/usecase"
)

type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
}

type AddressHandler struct {
	addressUC usecase.AddressUsecase
}

func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{addressUC: params.AddressUC}
}

type CreateAddressRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
	usecase.AddressInput
}

func (h *AddressHandler) Create(c echo.Context) error {
	var req CreateAddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.addressUC.Create(c.Request().Context(), deliverycontext.CurrentUser(c), req.UserID, req.AddressInput)
	if err != nil {
		return err
	}

	return response.Created(c, toAddressDTO(address), "The address was created succesfully")
}

func (h *AddressHandler) FindByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	address, err := h.addressUC.FindByID(c.Request().Context(), deliverycontext.CurrentUser(c), id)
	if err != nil {
		return err
	}

	return response.OK(c, toAddressDTO(address), fmt.Sprintf("The address with id '%d' was found succesfully", id))
}

func (h *AddressHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.AddressInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.addressUC.Update(c.Request().Context(), deliverycontext.CurrentUser(c), id, req)
	if err != nil {
		return err
	}

	return response.OK(c, toAddressDTO(address), fmt.Sprintf("The address with id '%d' was updated succesfully", id))
}

func (h *AddressHandler) Remove(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	address, err := h.addressUC.Remove(c.Request().Context(), deliverycontext.CurrentUser(c), id)
	if err != nil {
		return err
	}

	return response.OK(c, toAddressDTO(address), fmt.Sprintf("The address with id '%d' was deleted succesfully", id))
}
