package utils

import (
	"bookwise/database"
	"bookwise/models"
	"log"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeReconcileScheduler sets up the daily subscription reconciliation job.
// Webhook persistence failures are acked to the provider (see the webhook
// handler), so this job repairs any local status that drifted from Stripe.
func InitializeReconcileScheduler() {
	log.Println("[RECONCILE-SCHEDULER] Initializing subscription reconciliation scheduler...")

	c := cron.New()

	// Run daily at 4 AM
	c.AddFunc("0 4 * * *", func() {
		log.Println("[RECONCILE-SCHEDULER] Running daily subscription reconciliation...")
		ReconcileSubscriptions()
	})

	c.Start()
	log.Println("[RECONCILE-SCHEDULER] Scheduler started - runs daily at 4 AM")
}

// ReconcileSubscriptions re-reads provider subscription state for every user
// with a stored subscription id and repairs a drifted local status.
func ReconcileSubscriptions() {
	db := database.Database.Db

	// Rows touched today are left alone; a fresh webhook write wins.
	startOfDay := now.BeginningOfDay()

	var users []models.User
	if err := db.
		Where("stripe_subscription_id <> '' AND subscription_status <> ?", models.SubscriptionCanceled).
		Where("updated_at < ?", startOfDay).
		Find(&users).Error; err != nil {
		log.Printf("[RECONCILE-SCHEDULER] Error fetching users: %v", err)
		return
	}

	log.Printf("[RECONCILE-SCHEDULER] Checking %d subscriptions", len(users))

	repaired := 0
	for _, user := range users {
		sub, err := GetStripeSubscription(user.StripeSubscriptionID)
		if err != nil {
			log.Printf("[RECONCILE-SCHEDULER] Error fetching subscription %s: %v", user.StripeSubscriptionID, err)
			continue
		}

		if sub.Status == user.SubscriptionStatus {
			continue
		}

		if err := db.Model(&models.User{}).Where("id = ?", user.ID).
			Update("subscription_status", sub.Status).Error; err != nil {
			log.Printf("[RECONCILE-SCHEDULER] Error updating user %d: %v", user.ID, err)
			continue
		}
		log.Printf("[RECONCILE-SCHEDULER] Repaired user %d status %s -> %s", user.ID, user.SubscriptionStatus, sub.Status)
		repaired++
	}

	if repaired > 0 {
		log.Printf("[RECONCILE-SCHEDULER] Repaired %d drifted subscriptions", repaired)
	}
}
