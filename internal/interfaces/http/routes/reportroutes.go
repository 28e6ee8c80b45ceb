package routes

import (
	"github.com/gin-gonic/gin"

	reporthandlers "salesdaily/internal/interfaces/http/handlers/report"
	"salesdaily/internal/interfaces/http/middleware"
)

type ReportRouteConfig struct {
	ReportHandler  *reporthandlers.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupReportRoutes(engine *gin.Engine, config *ReportRouteConfig) {
	reports := engine.Group("/reports")
	reports.Use(config.AuthMiddleware.RequireAuth())
	{
		reports.POST("", config.ReportHandler.CreateReport)
		reports.GET("", config.ReportHandler.ListReports)

		// Nested comment endpoints go before the bare /:id routes.
		reports.POST("/:id/comments", config.ReportHandler.AddComment)
		reports.GET("/:id/comments", config.ReportHandler.ListComments)

		reports.GET("/:id", config.ReportHandler.GetReport)
		reports.PUT("/:id", config.ReportHandler.UpdateReport)
		reports.DELETE("/:id", config.ReportHandler.DeleteReport)
	}

	comments := engine.Group("/comments")
	comments.Use(config.AuthMiddleware.RequireAuth())
	{
		comments.PUT("/:id", config.ReportHandler.UpdateComment)
		comments.DELETE("/:id", config.ReportHandler.DeleteComment)
	}
}
