package router

import (
	"spectraSense/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupDimensionRoutes mounts the endpoint used by the web client.
func SetupDimensionRoutes(e *echo.Echo, handler *rest.DimensionHandler) {
	e.POST("/dimension", handler.Dispatch)
}

func SetupPredictionRoutes(api *echo.Group, handler *rest.AutoSenseHandler) {
	predictions := api.Group("/predictions")
	predictions.GET("/:type", handler.Predict)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.AutoEntertainHandler) {
	api.GET("/recommendations", handler.Recommend)
	api.GET("/media", handler.GetMedia)
}

func SetupOpsRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
