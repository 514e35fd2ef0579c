package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"padelpoint/internal/delivery/api/response"
	"padelpoint/internal/usecase"
)

type RoleHandlerParams struct {
	fx.In

	RoleUC usecase.RoleUsecase
}

type RoleHandler struct {
	roleUC usecase.RoleUsecase
}

func NewRoleHandler(params RoleHandlerParams) *RoleHandler {
	return &RoleHandler{roleUC: params.RoleUC}
}

type UpdateRoleRequest struct {
	Name string `json:"name" validate:"required,max=32"`
}

func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, toRoleDTOs(roles), "The roles were found succesfully")
}

func (h *RoleHandler) FindByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	role, err := h.roleUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, RoleDTO{ID: role.ID, Name: role.Name}, "The role was found succesfully")
}

func (h *RoleHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, err := h.roleUC.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}

	return response.OK(c, RoleDTO{ID: role.ID, Name: role.Name}, "Role updated succesfully")
}
