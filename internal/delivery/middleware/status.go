package middleware

import (
	"net/http"

	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/errors"
)

// statusOf predicts the status the error handler will render for err.
func statusOf(err error) int {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
