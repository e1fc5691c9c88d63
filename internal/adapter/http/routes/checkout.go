package routes

import (
	"rede_saude/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPlans    = "/plans"
	PathCheckout = "/checkout"
	PathWebhooks = "/webhooks"
	PathAddress  = "/address"
)

func addCheckoutRoutes(rg *gin.RouterGroup, planHandler *handlers.PlanHandler, checkoutHandler *handlers.CheckoutHandler, webhookHandler *handlers.WebhookHandler, addressHandler *handlers.AddressHandler) {
	plans := rg.Group(PathPlans)
	{
		plans.GET("", planHandler.ListPlans)
		plans.GET("/:plan_id", planHandler.GetPlan)
	}

	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("", checkoutHandler.StartCheckout)
		checkout.GET("/:session_id", checkoutHandler.GetCheckout)
		checkout.DELETE("/:session_id", checkoutHandler.AbandonCheckout)
		checkout.POST("/:session_id/plan", checkoutHandler.SelectPlan)
		checkout.POST("/:session_id/customer", checkoutHandler.SubmitCustomer)
		checkout.POST("/:session_id/payment-method", checkoutHandler.ChoosePaymentMethod)
		checkout.POST("/:session_id/card", checkoutHandler.SubmitCard)
		checkout.POST("/:session_id/retry", checkoutHandler.Retry)
		checkout.POST("/:session_id/continue", checkoutHandler.Continue)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/payments", webhookHandler.HandlePaymentNotification)
	}

	address := rg.Group(PathAddress)
	{
		address.GET("/:cep", addressHandler.LookupAddress)
	}
}
