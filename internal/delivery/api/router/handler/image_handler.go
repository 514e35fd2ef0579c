package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"padelpoint/internal/delivery/api/response"
	"padelpoint/internal/usecase"
)

type ImageHandlerParams struct {
	fx.In

	ImageUC usecase.ImageUsecase
}

// ImageHandler serves the secondary pictures of products.
type ImageHandler struct {
	imageUC usecase.ImageUsecase
}

func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{imageUC: params.ImageUC}
}

func (h *ImageHandler) Upload(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	file, closer, err := formUpload(c, "image", false)
	if err != nil {
		return err
	}
	defer closer.Close()

	image, err := h.imageUC.Upload(c.Request().Context(), productID, *file)
	if err != nil {
		return err
	}

	return response.Created(c, toProductImageDTO(image), "The product image was created successfully")
}

// List returns every image, or only those of ?productId=.
func (h *ImageHandler) List(c echo.Context) error {
	productID, err := queryInt64(c, "productId")
	if err != nil {
		return err
	}

	images, err := h.imageUC.List(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	return response.OK(c, toProductImageDTOs(images), "The product images was found successfully")
}

func (h *ImageHandler) FindOne(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	image, err := h.imageUC.FindOne(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, toProductImageDTO(image), "The product image was found successfully")
}

func (h *ImageHandler) Remove(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	image, err := h.imageUC.Remove(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, toProductImageDTO(image), "The product image was deleted successfully")
}
