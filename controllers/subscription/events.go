package subscriptionController

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"bookwise/models"
	"bookwise/utils"

	"gorm.io/gorm"
)

// Webhook event types driving the subscription state machine
const (
	EventCheckoutCompleted    = "checkout.session.completed"
	EventSubscriptionUpdated  = "customer.subscription.updated"
	EventSubscriptionDeleted  = "customer.subscription.deleted"
	EventInvoicePaymentFailed = "invoice.payment_failed"
)

// WebhookEvent is the verified envelope produced after signature checking.
// Dispatch trusts its payload.
type WebhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type checkoutSessionObject struct {
	ID           string            `json:"id"`
	Customer     string            `json:"customer"`
	Subscription string            `json:"subscription"`
	Metadata     map[string]string `json:"metadata"`
}

type subscriptionObject struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Status   string `json:"status"`
}

type invoiceObject struct {
	Customer string `json:"customer"`
}

// ParseWebhookEvent decodes a verified raw payload into an event envelope.
func ParseWebhookEvent(payload []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("malformed event payload: %v", err)
	}
	if event.Type == "" {
		return nil, fmt.Errorf("event has no type")
	}
	return &event, nil
}

// markProcessed records the event id; returns false when the event was
// already applied (redelivery).
func markProcessed(db *gorm.DB, event *WebhookEvent) bool {
	if event.ID == "" {
		return true
	}
	err := db.Create(&models.StripeEvent{EventID: event.ID, Type: event.Type}).Error
	if err != nil {
		// Unique violation means we have seen this event before.
		if strings.Contains(strings.ToLower(err.Error()), "unique") ||
			strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return false
		}
		log.Printf("[WEBHOOK] Failed to record event %s: %v", event.ID, err)
	}
	return true
}

// ApplyEvent dispatches one verified event against the subscription state.
// Returns whether the event type was recognized. Applying the same event
// twice leaves the same end state.
func ApplyEvent(db *gorm.DB, event *WebhookEvent) (bool, error) {
	switch event.Type {
	case EventCheckoutCompleted:
		return true, applyCheckoutCompleted(db, event)
	case EventSubscriptionUpdated:
		return true, applySubscriptionUpdated(db, event)
	case EventSubscriptionDeleted:
		return true, applySubscriptionDeleted(db, event)
	case EventInvoicePaymentFailed:
		return true, applyInvoicePaymentFailed(db, event)
	default:
		return false, nil
	}
}

func applyCheckoutCompleted(db *gorm.DB, event *WebhookEvent) error {
	var session checkoutSessionObject
	if err := json.Unmarshal(event.Data.Object, &session); err != nil {
		return fmt.Errorf("malformed checkout session: %v", err)
	}

	// The local user id travels in the session metadata, set at creation time.
	rawUserID, ok := session.Metadata["user_id"]
	if !ok || rawUserID == "" {
		return fmt.Errorf("checkout session %s has no user_id metadata", session.ID)
	}
	userID, err := strconv.ParseUint(rawUserID, 10, 64)
	if err != nil {
		return fmt.Errorf("checkout session %s has invalid user_id metadata: %v", session.ID, err)
	}

	if !markProcessed(db, event) {
		return nil
	}

	var user models.User
	if err := db.Where("id = ?", uint(userID)).First(&user).Error; err != nil {
		return fmt.Errorf("user %d from checkout session %s not found: %v", userID, session.ID, err)
	}

	updates := map[string]interface{}{
		"stripe_customer_id":     session.Customer,
		"stripe_subscription_id": session.Subscription,
		"subscription_status":    models.SubscriptionActive,
	}
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to activate subscription for user %d: %v", user.ID, err)
	}

	go utils.SendSubscriptionActiveEmail(user.Email, user.Name)
	return nil
}

func applySubscriptionUpdated(db *gorm.DB, event *WebhookEvent) error {
	var sub subscriptionObject
	if err := json.Unmarshal(event.Data.Object, &sub); err != nil {
		return fmt.Errorf("malformed subscription object: %v", err)
	}

	if !markProcessed(db, event) {
		return nil
	}

	var user models.User
	if err := db.Where("stripe_customer_id = ?", sub.Customer).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Checkout may not be processed yet; the provider will not resend,
			// the daily reconciler picks this up once ids are persisted.
			log.Printf("[WEBHOOK] No user for customer %s on %s, skipping", sub.Customer, event.Type)
			return nil
		}
		return err
	}

	// The provider status is copied through verbatim.
	updates := map[string]interface{}{
		"stripe_subscription_id": sub.ID,
		"subscription_status":    sub.Status,
	}
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update subscription for user %d: %v", user.ID, err)
	}
	return nil
}

func applySubscriptionDeleted(db *gorm.DB, event *WebhookEvent) error {
	var sub subscriptionObject
	if err := json.Unmarshal(event.Data.Object, &sub); err != nil {
		return fmt.Errorf("malformed subscription object: %v", err)
	}

	if !markProcessed(db, event) {
		return nil
	}

	var user models.User
	if err := db.Where("stripe_customer_id = ?", sub.Customer).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WEBHOOK] No user for customer %s on %s, skipping", sub.Customer, event.Type)
			return nil
		}
		return err
	}

	if err := db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("subscription_status", models.SubscriptionCanceled).Error; err != nil {
		return fmt.Errorf("failed to cancel subscription for user %d: %v", user.ID, err)
	}

	go utils.SendSubscriptionCanceledEmail(user.Email, user.Name)
	return nil
}

func applyInvoicePaymentFailed(db *gorm.DB, event *WebhookEvent) error {
	var invoice invoiceObject
	if err := json.Unmarshal(event.Data.Object, &invoice); err != nil {
		return fmt.Errorf("malformed invoice object: %v", err)
	}

	if !markProcessed(db, event) {
		return nil
	}

	var user models.User
	if err := db.Where("stripe_customer_id = ?", invoice.Customer).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WEBHOOK] No user for customer %s on %s, skipping", invoice.Customer, event.Type)
			return nil
		}
		return err
	}

	if err := db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("subscription_status", models.SubscriptionPastDue).Error; err != nil {
		return fmt.Errorf("failed to flag past_due for user %d: %v", user.ID, err)
	}
	return nil
}
