package response

import (
	"net/http"

	deliverycontext "padelpoint/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse is the envelope of every successful call.
type SuccessResponse struct {
	Status   bool      `json:"status"`
	Message  string    `json:"message"`
	Recourse any       `json:"recourse"`
	Meta     *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope of every failed call.
type ErrorResponse struct {
	Status  bool      `json:"status"`
	Message string    `json:"message"`
	Code    string    `json:"code"`
	Details any       `json:"details,omitempty"` // only for 4xx other than 401/403
	Meta    *MetaInfo `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, recourse any, message string) error {
	return c.JSON(statusCode, SuccessResponse{
		Status:   true,
		Message:  message,
		Recourse: recourse,
		Meta:     &MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

func OK(c echo.Context, recourse any, message string) error {
	return Success(c, http.StatusOK, recourse, message)
}

func Created(c echo.Context, recourse any, message string) error {
	return Success(c, http.StatusCreated, recourse, message)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Status:  false,
		Message: message,
		Code:    errorCode,
		Details: details,
		Meta:    &MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
