// Package handler contains the echo handlers of the storefront API.
package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	domainerrors "padelpoint/internal/domain/errors"
)

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.NewBadRequest("The param '%s' must be a positive integer", name)
	}

	return id, nil
}

func queryInt(c echo.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.NewBadRequest("The query param '%s' must be an integer", name)
	}

	return &v, nil
}

func queryInt64(c echo.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domainerrors.NewBadRequest("The query param '%s' must be an integer", name)
	}

	return &v, nil
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domainerrors.NewBadRequest("The query param '%s' must be a number", name)
	}

	return &v, nil
}

// queryDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func queryDate(c echo.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}

	return nil, domainerrors.NewBadRequest("The query param '%s' must be a date", name)
}

// bindAndValidate binds the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return c.Validate(req)
}
