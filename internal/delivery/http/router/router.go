// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"caftan/internal/delivery/http/middleware"
	"caftan/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler      *handler.CatalogHandler
	ContentHandler      *handler.ContentHandler
	ContactHandler      *handler.ContactHandler
	AccessGate          *middleware.AccessGate
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler      *handler.CatalogHandler
	contentHandler      *handler.ContentHandler
	contactHandler      *handler.ContactHandler
	accessGate          *middleware.AccessGate
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:      params.CatalogHandler,
		contentHandler:      params.ContentHandler,
		contactHandler:      params.ContactHandler,
		accessGate:          params.AccessGate,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.requestIDMiddleware.Process)
	{
		// Catalog and shop reads, remote-first with static fallback
		api.GET("/catalog/items", r.catalogHandler.GetCatalogItems)
		api.GET("/shops", r.catalogHandler.GetShops)
		api.GET("/shops/listings", r.catalogHandler.GetShopListings)
		api.GET("/shops/:slug", r.catalogHandler.GetShop)
		api.GET("/shop-products", r.catalogHandler.GetShopProductListings)

		// Localized editorial content
		api.GET("/content/:locale/articles", r.contentHandler.ListArticles)
		api.GET("/content/:locale/articles/categories", r.contentHandler.ListCategories)
		api.GET("/content/:locale/articles/featured", r.contentHandler.GetFeatured)
		api.GET("/content/:locale/articles/:slug", r.contentHandler.GetArticle)
		api.GET("/content/:locale/articles/:slug/related", r.contentHandler.GetRelated)

		// Public submission pipeline
		api.POST("/contact", r.contactHandler.Submit)
	}

	// Operator routes behind the access gate
	ops := e.Group("/api/submissions")
	ops.Use(r.requestIDMiddleware.Process)
	ops.Use(r.accessGate.Authorize)
	{
		ops.POST("", r.contactHandler.CreateRecord)
		ops.GET("", r.contactHandler.ListRecords)
	}
}
