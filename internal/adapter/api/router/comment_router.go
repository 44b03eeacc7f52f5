package router

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/handler"
	"codecircle/internal/adapter/api/middleware"
)

func SetupCommentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	commentHandler := handler.GetCommentHandler()

	comments := e.Group("/v1/comments")
	comments.Use(authMiddleware.Authenticate)
	comments.POST("", commentHandler.AddComment)

	reports := e.Group("/v1/reports")
	reports.Use(authMiddleware.Authenticate)
	reports.POST("", commentHandler.ReportComment)
}
