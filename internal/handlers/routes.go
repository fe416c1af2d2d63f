package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"function-invoker-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	InvokerService services.InvokerService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	invokeHandler := NewInvokeHandler(config.InvokerService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health probe; never depends on the loaded function
	router.GET("/health", invokeHandler.Health)

	// Invoke endpoint
	router.POST("/invoke", invokeHandler.Invoke)
}
