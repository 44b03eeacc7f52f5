package router

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/handler"
	"codecircle/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	e.GET("/v1/messages", chatHandler.ListMessages)

	messages := e.Group("/v1/messages")
	messages.Use(authMiddleware.Authenticate)
	messages.POST("", chatHandler.SendMessage)
}
