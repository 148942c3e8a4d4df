package routes

import (
	"net/http"

	"fithub_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// API смонтирован в корне: фронтенд ходит на /signup, /login и /trainer/*.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("")
	{
		appHandlers.Auth.RegisterRoutes(root)
		appHandlers.Application.RegisterRoutes(root)
		appHandlers.Tutorial.RegisterRoutes(root)
		appHandlers.Query.RegisterRoutes(root)
		appHandlers.Analytics.RegisterRoutes(root)
	}

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
