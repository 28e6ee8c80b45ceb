package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "salesdaily/internal/interfaces/http/handlers/user"
	"salesdaily/internal/interfaces/http/middleware"
	"salesdaily/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireManager())
	{
		users.POST("", config.UserHandler.CreateUser)
		users.GET("", config.UserHandler.ListUsers)
		users.GET("/:id", config.UserHandler.GetUser)
		users.PUT("/:id", config.UserHandler.UpdateUser)
		users.DELETE("/:id", config.UserHandler.DeleteUser)
	}
}
