package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/errors"
	"padelpoint/internal/usecase"
)

// formUpload opens the multipart file field. It returns (nil, nil, nil) when
// the field is absent and optional is set.
func formUpload(c echo.Context, field string, optional bool) (*usecase.FileUpload, io.Closer, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if optional && (errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart)) {
			return nil, nil, nil
		}

		return nil, nil, domainerrors.NewBadRequest("The file field '%s' is required", field)
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, domainerrors.NewBadRequest("The file '%s' could not be read", header.Filename)
	}

	return toFileUpload(header, file), file, nil
}

func toFileUpload(header *multipart.FileHeader, file multipart.File) *usecase.FileUpload {
	return &usecase.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	}
}
