package router

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/handler"
	"codecircle/internal/adapter/api/middleware"
)

func SetupAnnouncementRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	announcementHandler := handler.GetAnnouncementHandler()

	e.GET("/v1/announcements", announcementHandler.ListAnnouncements)

	admin := e.Group("/v1/announcements")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", announcementHandler.CreateAnnouncement)
}
