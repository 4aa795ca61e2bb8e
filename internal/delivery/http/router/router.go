// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"souk/internal/delivery/http/middleware"
	"souk/internal/delivery/http/router/handler"
	"souk/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProfileHandler  *handler.ProfileHandler
	CatalogHandler  *handler.CatalogHandler
	OrderHandler    *handler.OrderHandler
	FavoriteHandler *handler.FavoriteHandler
	ReviewHandler   *handler.ReviewHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	catalogHandler  *handler.CatalogHandler
	orderHandler    *handler.OrderHandler
	favoriteHandler *handler.FavoriteHandler
	reviewHandler   *handler.ReviewHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		profileHandler:  params.ProfileHandler,
		catalogHandler:  params.CatalogHandler,
		orderHandler:    params.OrderHandler,
		favoriteHandler: params.FavoriteHandler,
		reviewHandler:   params.ReviewHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.SignIn)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.SignOut, r.authMiddleware.Authenticate)
	}

	// Public marketplace routes
	e.GET("/categories", r.catalogHandler.ListCategories)
	e.GET("/suppliers", r.catalogHandler.ListSuppliers)
	e.GET("/suppliers/:id", r.catalogHandler.GetSupplier)
	e.GET("/suppliers/:id/reviews", r.reviewHandler.ListForSupplier)

	// Routes for any authenticated principal
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.profileHandler.Me)
		meGroup.PUT("/profile", r.profileHandler.UpdateProfile)
		meGroup.GET("/orders/:id", r.orderHandler.GetOrder)
	}

	// Supplier routes that require authentication and the "supplier" role
	supplierGroup := e.Group("/supplier")
	supplierGroup.Use(r.authMiddleware.Authenticate)
	supplierGroup.Use(r.authMiddleware.RequireRole(entity.RoleSupplier))
	{
		supplierGroup.PUT("/profile", r.profileHandler.UpdateSupplierProfile)
		supplierGroup.GET("/products", r.catalogHandler.ListMyProducts)
		supplierGroup.POST("/products", r.catalogHandler.CreateProduct)
		supplierGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		supplierGroup.GET("/orders", r.orderHandler.ListSupplierOrders)
		supplierGroup.PUT("/orders/:id/status", r.orderHandler.UpdateOrderStatus)
		supplierGroup.GET("/storefront/qrcode", r.catalogHandler.GetStorefrontQR)
	}

	// Vendor routes that require authentication and the "vendor" role
	vendorGroup := e.Group("/vendor")
	vendorGroup.Use(r.authMiddleware.Authenticate)
	vendorGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
	{
		vendorGroup.PUT("/profile", r.profileHandler.UpdateVendorProfile)
		vendorGroup.POST("/orders", r.orderHandler.PlaceOrder)
		vendorGroup.GET("/orders", r.orderHandler.ListVendorOrders)
		vendorGroup.PUT("/orders/:id/status", r.orderHandler.UpdateOrderStatus)
		vendorGroup.POST("/reviews", r.reviewHandler.Submit)
		vendorGroup.GET("/favorites", r.favoriteHandler.List)
		vendorGroup.POST("/favorites/:supplierId/toggle", r.favoriteHandler.Toggle)
		vendorGroup.GET("/favorites/:supplierId", r.favoriteHandler.IsFavorite)
	}
}
