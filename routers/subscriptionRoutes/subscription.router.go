package subscriptionRoutes

import (
	controllers "bookwise/controllers/subscription"
	"bookwise/middleware"
	validators "bookwise/validators/subscription"

	"github.com/gofiber/fiber/v2"
)

// SetupSubscriptionRoutes sets up billing session routes and the provider
// webhook. The webhook authenticates by signature, not by bearer token.
func SetupSubscriptionRoutes(app *fiber.App) {
	subGroup := app.Group("/subscription")

	subGroup.Post("/checkout-session", middleware.JWTMiddleware, validators.Checkout(), controllers.CreateCheckoutSession)
	subGroup.Post("/portal-session", middleware.JWTMiddleware, validators.Portal(), controllers.CreatePortalSession)
	subGroup.Get("/status", middleware.JWTMiddleware, controllers.GetSubscriptionStatus)

	subGroup.Post("/webhook", controllers.HandleWebhook)
}
