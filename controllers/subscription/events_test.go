package subscriptionController

import (
	"encoding/json"
	"fmt"
	"testing"

	"bookwise/config"
	"bookwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.StripeEvent{}))
	return db
}

func makeEvent(t *testing.T, id, eventType string, object interface{}) *WebhookEvent {
	t.Helper()

	raw, err := json.Marshal(object)
	require.NoError(t, err)

	event := &WebhookEvent{ID: id, Type: eventType}
	event.Data.Object = raw
	return event
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{Name: "Test Parent", Email: email, Password: "x", SubscriptionStatus: models.SubscriptionNone}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestApplyCheckoutCompleted(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "parent@example.com")

	event := makeEvent(t, "evt_1", EventCheckoutCompleted, map[string]interface{}{
		"id":           "cs_1",
		"customer":     "cus_1",
		"subscription": "sub_1",
		"metadata":     map[string]string{"user_id": fmt.Sprintf("%d", user.ID)},
	})

	handled, err := ApplyEvent(db, event)
	require.NoError(t, err)
	assert.True(t, handled)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, models.SubscriptionActive, updated.SubscriptionStatus)
	assert.Equal(t, "cus_1", updated.StripeCustomerID)
	assert.Equal(t, "sub_1", updated.StripeSubscriptionID)
}

func TestApplyCheckoutCompletedIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "parent@example.com")

	event := makeEvent(t, "evt_1", EventCheckoutCompleted, map[string]interface{}{
		"id":           "cs_1",
		"customer":     "cus_1",
		"subscription": "sub_1",
		"metadata":     map[string]string{"user_id": fmt.Sprintf("%d", user.ID)},
	})

	for i := 0; i < 2; i++ {
		handled, err := ApplyEvent(db, event)
		require.NoError(t, err)
		assert.True(t, handled)
	}

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, models.SubscriptionActive, updated.SubscriptionStatus)
	assert.Equal(t, "cus_1", updated.StripeCustomerID)
	assert.Equal(t, "sub_1", updated.StripeSubscriptionID)

	var processed int64
	db.Model(&models.StripeEvent{}).Count(&processed)
	assert.Equal(t, int64(1), processed)
}

func TestApplyCheckoutCompletedMissingMetadata(t *testing.T) {
	db := newTestDB(t)

	event := makeEvent(t, "evt_1", EventCheckoutCompleted, map[string]interface{}{
		"id":       "cs_1",
		"customer": "cus_1",
	})

	handled, err := ApplyEvent(db, event)
	assert.True(t, handled)
	assert.Error(t, err)
}

func TestApplySubscriptionUpdatedCopiesStatusVerbatim(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "parent@example.com")
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"stripe_customer_id":  "cus_1",
		"subscription_status": models.SubscriptionActive,
	}).Error)

	event := makeEvent(t, "evt_2", EventSubscriptionUpdated, map[string]interface{}{
		"id":       "sub_1",
		"customer": "cus_1",
		"status":   "past_due",
	})

	handled, err := ApplyEvent(db, event)
	require.NoError(t, err)
	assert.True(t, handled)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, "past_due", updated.SubscriptionStatus)
	assert.Equal(t, "sub_1", updated.StripeSubscriptionID)
}

func TestApplySubscriptionUpdatedUnknownCustomer(t *testing.T) {
	db := newTestDB(t)

	// Updated may arrive before checkout is processed; not an error.
	event := makeEvent(t, "evt_2", EventSubscriptionUpdated, map[string]interface{}{
		"id":       "sub_1",
		"customer": "cus_unknown",
		"status":   "active",
	})

	handled, err := ApplyEvent(db, event)
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestApplySubscriptionDeletedFromAnyState(t *testing.T) {
	for _, prior := range []string{models.SubscriptionActive, models.SubscriptionPastDue, models.SubscriptionNone} {
		t.Run(prior, func(t *testing.T) {
			db := newTestDB(t)
			user := createUser(t, db, "parent@example.com")
			require.NoError(t, db.Model(user).Updates(map[string]interface{}{
				"stripe_customer_id":  "cus_1",
				"subscription_status": prior,
			}).Error)

			event := makeEvent(t, "evt_3", EventSubscriptionDeleted, map[string]interface{}{
				"id":       "sub_1",
				"customer": "cus_1",
				"status":   "canceled",
			})

			handled, err := ApplyEvent(db, event)
			require.NoError(t, err)
			assert.True(t, handled)

			var updated models.User
			require.NoError(t, db.First(&updated, user.ID).Error)
			assert.Equal(t, models.SubscriptionCanceled, updated.SubscriptionStatus)
		})
	}
}

func TestApplyInvoicePaymentFailed(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "parent@example.com")
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"stripe_customer_id":  "cus_1",
		"subscription_status": models.SubscriptionActive,
	}).Error)

	event := makeEvent(t, "evt_4", EventInvoicePaymentFailed, map[string]interface{}{
		"customer": "cus_1",
	})

	handled, err := ApplyEvent(db, event)
	require.NoError(t, err)
	assert.True(t, handled)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, models.SubscriptionPastDue, updated.SubscriptionStatus)
}

func TestApplyEventUnrecognizedType(t *testing.T) {
	db := newTestDB(t)

	event := makeEvent(t, "evt_5", "customer.created", map[string]interface{}{"id": "cus_1"})

	handled, err := ApplyEvent(db, event)
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestParseWebhookEvent(t *testing.T) {
	event, err := ParseWebhookEvent([]byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1"}}}`))
	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, EventCheckoutCompleted, event.Type)

	_, err = ParseWebhookEvent([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseWebhookEvent([]byte(`{"id":"evt_1"}`))
	assert.Error(t, err)
}
