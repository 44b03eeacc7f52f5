package router

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/handler"
	"codecircle/internal/adapter/api/middleware"
)

func SetupWebSocketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	webSocketHandler := handler.GetWebSocketHandler()

	ws := e.Group("/v1/ws")
	ws.Use(authMiddleware.Authenticate)
	ws.GET("/chat", webSocketHandler.HandleChat)
}
