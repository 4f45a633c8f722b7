package routes

import (
	"assessment_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions  = "/sessions"
	PathPricing   = "/pricing"
	PathGateways  = "/gateways"
	PathAuth      = "/auth"
	PathPayments  = "/payments"
	PathCheckouts = "/checkouts"
)

type checkoutHandlers struct {
	session *handlers.SessionHandler
	pricing *handlers.PricingHandler
	gateway *handlers.GatewayHandler
	auth    *handlers.AuthHandler
	payment *handlers.PaymentHandler
}

func addCheckoutRoutes(rg *gin.RouterGroup, h checkoutHandlers) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("/touch", h.session.Touch)
		sessions.GET("/state", h.session.State)
		sessions.DELETE("", h.session.Clear)
	}

	pricing := rg.Group(PathPricing)
	{
		pricing.GET("", h.pricing.GetPricing)
		pricing.GET("/gateways", h.pricing.GetGatewayPricing)
	}

	gateways := rg.Group(PathGateways)
	{
		gateways.GET("/recommended", h.gateway.Recommended)
		gateways.GET("/availability", h.gateway.Availability)
		gateways.GET("/:gateway", h.gateway.DisplayInfo)
		gateways.GET("/:gateway/summary", h.gateway.Summary)
	}

	auth := rg.Group(PathAuth)
	{
		auth.POST("/check", h.auth.Check)
		auth.POST("/return", h.auth.Return)
	}

	payments := rg.Group(PathPayments)
	{
		// Starts an attempt; 202 while the checkout waits on the browser.
		payments.POST("/:gateway", h.payment.ProcessPayment)
		payments.GET("/attempts/:attempt_id", h.payment.GetAttempt)
	}

	checkouts := rg.Group(PathCheckouts)
	{
		// Browser callbacks for an open checkout.
		checkouts.POST("/:attempt_id/orders", h.payment.CreateOrder)
		checkouts.POST("/:attempt_id/events", h.payment.CheckoutEvent)
	}
}
