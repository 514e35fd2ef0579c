package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPMetrics receives one observation per served request.
type HTTPMetrics interface {
	RequestStarted()
	RequestFinished()
	ObserveRequest(method, path string, status int, elapsed time.Duration)
}

type MetricsMiddleware struct {
	metrics HTTPMetrics
}

func NewMetricsMiddleware(metrics HTTPMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: metrics}
}

// Handle labels requests by route template so ids in paths do not explode cardinality.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.metrics.RequestStarted()
		defer m.metrics.RequestFinished()

		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			} else if status < 400 {
				// The error handler has not written yet.
				status = statusOf(err)
			}
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		m.metrics.ObserveRequest(c.Request().Method, path, status, time.Since(start))

		return err
	}
}
