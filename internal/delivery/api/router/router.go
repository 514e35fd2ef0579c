// Package router mounts the storefront routes and their guards.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"padelpoint/config"
	"padelpoint/internal/delivery/api/middleware"
	"padelpoint/internal/delivery/api/router/handler"
	"padelpoint/internal/domain/entity"
	"padelpoint/internal/infra/metrics"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	RoleHandler     *handler.RoleHandler
	CatalogHandlers *handler.CatalogHandlers
	AddressHandler  *handler.AddressHandler
	ProductHandler  *handler.ProductHandler
	ImageHandler    *handler.ImageHandler
	PaymentHandler  *handler.PaymentHandler
	OrderHandler    *handler.OrderHandler
	AuthGuard       *middleware.AuthGuard
	ResetGuard      *middleware.ResetPasswordGuard
	Metrics         *metrics.Metrics
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router RouterParams

func NewRouter(params RouterParams) *router {
	r := router(params)

	return &r
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.Config.Metrics.Enabled {
		e.GET(r.Config.Metrics.Path, echo.WrapHandler(r.Metrics.Handler()))
	}

	anyone := r.AuthGuard.Authenticated()
	member := r.AuthGuard.Require(entity.RoleNameAdmin, entity.RoleNameUser)
	admin := r.AuthGuard.Require(entity.RoleNameAdmin)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login/local", r.AuthHandler.LoginLocal)
		authGroup.POST("/login/google", r.AuthHandler.LoginGoogle)
		authGroup.GET("/status", r.AuthHandler.Status, member)
		authGroup.POST("/refresh", r.AuthHandler.Refresh)
		authGroup.POST("/logout", r.AuthHandler.Logout, anyone)
	}

	userGroup := e.Group("/user")
	{
		userGroup.POST("", r.UserHandler.Create)
		userGroup.GET("", r.UserHandler.FindAll, admin)
		userGroup.GET("/cookie", r.UserHandler.FindAuthenticated, member)
		userGroup.POST("/reset-pass-code", r.UserHandler.RequestResetCode)
		userGroup.POST("/reset-pass-validate-code", r.UserHandler.ValidateResetCode)
		userGroup.PUT("/reset-pass", r.UserHandler.ResetPassword, r.ResetGuard.Handle)
		userGroup.GET("/addresses/:id", r.UserHandler.Addresses, member)
		userGroup.GET("/:id", r.UserHandler.FindByID, member)
		userGroup.PATCH("/:id", r.UserHandler.Patch, member)
		userGroup.PUT("/:id", r.UserHandler.Put, member)
		userGroup.DELETE("/:id", r.UserHandler.Remove, admin)
	}

	rolesGroup := e.Group("/roles", admin)
	{
		rolesGroup.GET("", r.RoleHandler.List)
		rolesGroup.GET("/:id", r.RoleHandler.FindByID)
		rolesGroup.PATCH("/:id", r.RoleHandler.Update)
	}

	catalogs := map[string]*handler.CatalogHandler{
		"/brand":    r.CatalogHandlers.Brand,
		"/supplier": r.CatalogHandlers.Supplier,
		"/type":     r.CatalogHandlers.Type,
		"/id-type":  r.CatalogHandlers.IDType,
	}
	for prefix, h := range catalogs {
		group := e.Group(prefix)
		group.GET("", h.List)
		group.GET("/:id", h.FindByID)
		group.POST("", h.Create, admin)
		group.PATCH("/:id", h.Update, admin)
		group.DELETE("/:id", h.Remove, admin)
	}

	addressGroup := e.Group("/address", member)
	{
		addressGroup.POST("", r.AddressHandler.Create)
		addressGroup.GET("/:id", r.AddressHandler.FindByID)
		addressGroup.PATCH("/:id", r.AddressHandler.Update)
		addressGroup.DELETE("/:id", r.AddressHandler.Remove)
	}

	productGroup := e.Group("/product")
	{
		productGroup.GET("", r.ProductHandler.FindAll)
		productGroup.GET("/search", r.ProductHandler.Search)
		productGroup.POST("/validate-operation", r.ProductHandler.ValidateOperation, member)
		productGroup.GET("/:id", r.ProductHandler.FindOne)
		productGroup.POST("", r.ProductHandler.Create, admin)
		productGroup.PATCH("/:id", r.ProductHandler.Update, admin)
		productGroup.DELETE("/:id", r.ProductHandler.Remove, admin)
	}

	imagesGroup := e.Group("/images")
	{
		imagesGroup.GET("", r.ImageHandler.List)
		imagesGroup.GET("/:id", r.ImageHandler.FindOne)
		imagesGroup.POST("/:productId", r.ImageHandler.Upload, admin)
		imagesGroup.DELETE("/:id", r.ImageHandler.Remove, admin)
	}

	e.POST("/payment/preference", r.PaymentHandler.CreatePreference, member)

	orderGroup := e.Group("/order")
	{
		orderGroup.POST("", r.OrderHandler.Create, member)
		orderGroup.GET("", r.OrderHandler.FindAll, admin)
		orderGroup.GET("/user/:id", r.OrderHandler.FindByUser, member)
		orderGroup.GET("/:id", r.OrderHandler.FindOne, member)
		orderGroup.DELETE("/:id", r.OrderHandler.Remove, admin)
	}
}
