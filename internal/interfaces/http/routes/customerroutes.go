package routes

import (
	"github.com/gin-gonic/gin"

	customerhandlers "salesdaily/internal/interfaces/http/handlers/customer"
	"salesdaily/internal/interfaces/http/middleware"
)

type CustomerRouteConfig struct {
	CustomerHandler *customerhandlers.CustomerHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupCustomerRoutes(engine *gin.Engine, config *CustomerRouteConfig) {
	customers := engine.Group("/customers")
	customers.Use(config.AuthMiddleware.RequireAuth())
	{
		customers.POST("", config.CustomerHandler.CreateCustomer)
		customers.GET("", config.CustomerHandler.ListCustomers)
		customers.GET("/:id", config.CustomerHandler.GetCustomer)
		customers.PUT("/:id", config.CustomerHandler.UpdateCustomer)
		customers.DELETE("/:id", config.CustomerHandler.DeleteCustomer)
	}
}
