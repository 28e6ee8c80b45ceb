package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "salesdaily/internal/interfaces/http/handlers/auth"
	"salesdaily/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)
		auth.GET("/me",
			config.AuthMiddleware.RequireAuth(),
			config.AuthHandler.GetCurrentUser)
	}
}
