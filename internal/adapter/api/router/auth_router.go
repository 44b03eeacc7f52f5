package router

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/handler"
	"codecircle/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	e.POST("/v1/users", authHandler.Register)
	e.POST("/v1/jwt", authHandler.SessionToken)

	me := e.Group("/v1/users/me")
	me.Use(authMiddleware.Authenticate)
	me.GET("", authHandler.Me)
}
