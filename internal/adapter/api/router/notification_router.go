package router

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/handler"
	"codecircle/internal/adapter/api/middleware"
)

func SetupNotificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	notificationHandler := handler.GetNotificationHandler()

	notifications := e.Group("/v1/notifications")
	notifications.Use(authMiddleware.Authenticate)
	notifications.GET("", notificationHandler.FetchMailbox)
	notifications.PATCH("/mark-read", notificationHandler.MarkAllRead)
	notifications.POST("/archive", notificationHandler.ArchiveAll)
	notifications.GET("/archive", notificationHandler.ListArchive)
	notifications.DELETE("/archive/:id", notificationHandler.DeleteArchived)
}
