package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/amirhossein-jamali/people-registry/internal/domain/port/core"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	personHandler *handler.PersonHandler,
	healthHandler *handler.HealthHandler,
	registry *prometheus.Registry,
) {
	restAPI := router.Group("/rest_api")
	{
		restAPI.GET("/users", personHandler.GetUsers)

		restAPI.GET("/user", personHandler.GetUser)
		restAPI.POST("/user", personHandler.AddUser)
		restAPI.PUT("/user", personHandler.UpdateUser)
		restAPI.DELETE("/user", personHandler.DeleteUser)
	}

	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())
}
