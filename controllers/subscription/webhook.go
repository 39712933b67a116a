package subscriptionController

import (
	"log"

	"bookwise/config"
	"bookwise/database"
	"bookwise/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleWebhook receives provider events. The signature is verified against
// the raw body before the payload is inspected. Recognized-or-ignored events
// are acked with 200; persistence failures inside a handled branch are logged
// but still acked so provider retries do not replay side effects.
func HandleWebhook(c *fiber.Ctx) error {
	secret := config.AppConfig.StripeWebhookSecret
	if secret == "" {
		log.Println("[WEBHOOK] Webhook secret not configured, rejecting event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "webhook not configured",
		})
	}

	payload := c.Body()
	signature := c.Get("stripe-signature")

	if err := utils.VerifyStripeSignature(payload, signature, secret); err != nil {
		log.Printf("[WEBHOOK] Signature verification failed: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid signature",
		})
	}

	event, err := ParseWebhookEvent(payload)
	if err != nil {
		log.Printf("[WEBHOOK] %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed payload",
		})
	}

	handled, err := ApplyEvent(database.Database.Db, event)
	if err != nil {
		// Logged, not surfaced; the nightly reconcile repairs any drift.
		log.Printf("[WEBHOOK] Error applying %s (%s): %v", event.Type, event.ID, err)
	} else if !handled {
		log.Printf("[WEBHOOK] Ignoring unrecognized event type %s", event.Type)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"received": true,
	})
}
