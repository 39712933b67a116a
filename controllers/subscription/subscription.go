package subscriptionController

import (
	"bookwise/database"
	"bookwise/middleware"
	"bookwise/models"
	"bookwise/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateCheckoutSession starts a provider checkout for the caller and returns
// the redirect URL
func CreateCheckoutSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCheckout").(*struct {
		PriceID    string `json:"priceId"`
		SuccessURL string `json:"successUrl"`
		CancelURL  string `json:"cancelUrl"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Reuse the stored provider customer, creating one on first checkout.
	customerID := user.StripeCustomerID
	if customerID == "" {
		newCustomerID, err := utils.CreateStripeCustomer(user.Email, user.Name, user.ID)
		if err != nil {
			utils.LogStripeCall("create customer", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment provider error!", nil)
		}
		if err := db.Model(&user).Update("stripe_customer_id", newCustomerID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save customer!", nil)
		}
		customerID = newCustomerID
	}

	url, err := utils.CreateCheckoutSession(customerID, reqData.PriceID, reqData.SuccessURL, reqData.CancelURL, user.ID)
	if err != nil {
		utils.LogStripeCall("create checkout session", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment provider error!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout session created!", fiber.Map{
		"url": url,
	})
}

// CreatePortalSession returns a redirect URL to the provider's self-service
// billing portal
func CreatePortalSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPortal").(*struct {
		ReturnURL string `json:"returnUrl"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.StripeCustomerID == "" {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No subscription found!", nil)
	}

	url, err := utils.CreatePortalSession(user.StripeCustomerID, reqData.ReturnURL)
	if err != nil {
		utils.LogStripeCall("create portal session", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment provider error!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Portal session created!", fiber.Map{
		"url": url,
	})
}

// GetSubscriptionStatus returns the caller's current subscription state
func GetSubscriptionStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	status := user.SubscriptionStatus
	if status == "" {
		status = models.SubscriptionNone
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription status fetched!", fiber.Map{
		"status":         status,
		"subscriptionId": user.StripeSubscriptionID,
	})
}
