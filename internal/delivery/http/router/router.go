// Package router contains routing setup for the HTTP delivery.
package router

import (
	"locator/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	CarrierHandler  *handler.CarrierHandler
	LocationHandler *handler.LocationHandler
	SyncHandler     *handler.SyncHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	carrierHandler  *handler.CarrierHandler
	locationHandler *handler.LocationHandler
	syncHandler     *handler.SyncHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		carrierHandler:  params.CarrierHandler,
		locationHandler: params.LocationHandler,
		syncHandler:     params.SyncHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	api := e.Group("/api/v1")
	{
		api.GET("/carriers/nearest", r.carrierHandler.FindNearest)
		api.GET("/locations/resolve", r.locationHandler.Resolve)
		api.POST("/sync", r.syncHandler.Synchronize)
	}
}
