package router

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/handler"
	"codecircle/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()
	membershipHandler := handler.GetMembershipHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/reports", adminHandler.ListReports)
	admin.POST("/warnings", adminHandler.GiveWarning)
	admin.POST("/snooze", adminHandler.SnoozeAccount)
	admin.DELETE("/accounts/:email", adminHandler.DeleteAccount)
	admin.GET("/payments", membershipHandler.ListAllPayments)
}
