// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"freightway/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DistanceHandler *handler.DistanceHandler
	UsageHandler    *handler.UsageHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	distanceHandler *handler.DistanceHandler
	usageHandler    *handler.UsageHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		distanceHandler: params.DistanceHandler,
		usageHandler:    params.UsageHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Distance calculation routes
	distanceGroup := api.Group("/distance")
	{
		distanceGroup.POST("/calculate", r.distanceHandler.Calculate)
		distanceGroup.POST("/invalidate", r.distanceHandler.Invalidate)
		distanceGroup.GET("/rate-limit/:requesterID", r.distanceHandler.RateLimitStatus)
		distanceGroup.GET("/cache/stats", r.distanceHandler.CacheStats)
	}

	// Usage reporting routes, consumed by the operations dashboard
	usageGroup := api.Group("/usage")
	{
		usageGroup.GET("/summary", r.usageHandler.Summary)
		usageGroup.GET("/by-type", r.usageHandler.ByType)
		usageGroup.GET("/failures", r.usageHandler.Failures)
		usageGroup.GET("/slow", r.usageHandler.Slow)
		usageGroup.GET("/cost/:year/:month", r.usageHandler.MonthlyCost)
	}
}
