package subscriptionValidator

import (
	"bookwise/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Checkout validates the checkout-session body. A missing price id is
// rejected here, before any provider call is attempted.
func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PriceID    string `json:"priceId"`
			SuccessURL string `json:"successUrl"`
			CancelURL  string `json:"cancelUrl"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.PriceID = strings.TrimSpace(reqData.PriceID)
		if reqData.PriceID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Price ID is required!", nil)
		}
		if reqData.SuccessURL == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Success URL is required!", nil)
		}
		if reqData.CancelURL == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cancel URL is required!", nil)
		}

		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}

// Portal validates the portal-session body
func Portal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ReturnURL string `json:"returnUrl"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.ReturnURL) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Return URL is required!", nil)
		}

		c.Locals("validatedPortal", reqData)
		return c.Next()
	}
}
