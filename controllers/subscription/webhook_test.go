package subscriptionController

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"bookwise/config"
	"bookwise/database"
	"bookwise/models"
	"bookwise/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test_secret"

func newWebhookApp(t *testing.T) *fiber.App {
	t.Helper()

	db := newTestDB(t)
	database.Database = database.DbInstance{Db: db}
	config.AppConfig.StripeWebhookSecret = testWebhookSecret

	app := fiber.New()
	app.Post("/subscription/webhook", HandleWebhook)
	return app
}

func postWebhook(t *testing.T, app *fiber.App, payload []byte, signature string) (int, string) {
	t.Helper()

	req := httptest.NewRequest("POST", "/subscription/webhook", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("stripe-signature", signature)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestWebhookRejectsMissingSignature(t *testing.T) {
	app := newWebhookApp(t)

	status, _ := postWebhook(t, app, []byte(`{"id":"evt_1","type":"x"}`), "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestWebhookRejectsInvalidSignature(t *testing.T) {
	app := newWebhookApp(t)

	payload := []byte(`{"id":"evt_1","type":"x"}`)
	signature := utils.SignWebhookPayload([]byte(`different payload`), testWebhookSecret, time.Now())

	status, _ := postWebhook(t, app, payload, signature)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestWebhookRejectsStaleSignature(t *testing.T) {
	app := newWebhookApp(t)

	payload := []byte(`{"id":"evt_1","type":"x"}`)
	signature := utils.SignWebhookPayload(payload, testWebhookSecret, time.Now().Add(-time.Hour))

	status, _ := postWebhook(t, app, payload, signature)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestWebhookAcksUnrecognizedEvent(t *testing.T) {
	app := newWebhookApp(t)

	payload := []byte(`{"id":"evt_1","type":"customer.created","data":{"object":{"id":"cus_1"}}}`)
	signature := utils.SignWebhookPayload(payload, testWebhookSecret, time.Now())

	status, body := postWebhook(t, app, payload, signature)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"received":true`)
}

func TestWebhookAppliesSubscriptionDeleted(t *testing.T) {
	app := newWebhookApp(t)
	db := database.Database.Db

	user := createUser(t, db, "parent@example.com")
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"stripe_customer_id":  "cus_1",
		"subscription_status": models.SubscriptionActive,
	}).Error)

	payload := []byte(`{"id":"evt_9","type":"customer.subscription.deleted","data":{"object":{"id":"sub_1","customer":"cus_1"}}}`)
	signature := utils.SignWebhookPayload(payload, testWebhookSecret, time.Now())

	status, body := postWebhook(t, app, payload, signature)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"received":true`)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, models.SubscriptionCanceled, updated.SubscriptionStatus)
}

func TestWebhookMalformedPayloadAfterValidSignature(t *testing.T) {
	app := newWebhookApp(t)

	payload := []byte(`this is not json`)
	signature := utils.SignWebhookPayload(payload, testWebhookSecret, time.Now())

	status, _ := postWebhook(t, app, payload, signature)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
