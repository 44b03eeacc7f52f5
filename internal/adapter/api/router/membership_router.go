package router

import (
	"github.com/labstack/echo/v4"

	"codecircle/internal/adapter/api/handler"
	"codecircle/internal/adapter/api/middleware"
)

func SetupMembershipRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	membershipHandler := handler.GetMembershipHandler()

	e.GET("/v1/memberships", membershipHandler.ListPlans)
	e.GET("/v1/memberships/:id", membershipHandler.GetPlan)

	payments := e.Group("/v1/payments")
	payments.Use(authMiddleware.Authenticate)
	payments.POST("", membershipHandler.RecordPayment)
	payments.GET("", membershipHandler.ListMyPayments)

	intent := e.Group("/v1/create-payment-intent")
	intent.Use(authMiddleware.Authenticate)
	intent.POST("", membershipHandler.CreatePaymentIntent)
}
