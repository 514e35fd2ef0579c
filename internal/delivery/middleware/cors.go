package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/cors"

	"padelpoint/config"
	deliverycontext "padelpoint/internal/delivery/context"
)

// NewCORS allows the configured storefront origins to call the API with session cookies.
func NewCORS(cfg *config.Config) echo.MiddlewareFunc {
	origins := cfg.HTTP.CORS.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Content-Type", deliverycontext.HeaderXRequestID},
		ExposedHeaders:   []string{deliverycontext.HeaderXRequestID},
		MaxAge:           3600,
		AllowCredentials: true,
	})

	return echo.WrapMiddleware(handler.Handler)
}
