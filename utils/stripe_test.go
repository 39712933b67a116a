package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyStripeSignatureValid(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	secret := "whsec_abc123"

	header := SignWebhookPayload(payload, secret, time.Now())
	require.NoError(t, VerifyStripeSignature(payload, header, secret))
}

func TestVerifyStripeSignatureTamperedPayload(t *testing.T) {
	secret := "whsec_abc123"

	header := SignWebhookPayload([]byte(`{"amount":100}`), secret, time.Now())
	err := VerifyStripeSignature([]byte(`{"amount":99999}`), header, secret)
	assert.Error(t, err)
}

func TestVerifyStripeSignatureWrongSecret(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)

	header := SignWebhookPayload(payload, "whsec_abc123", time.Now())
	err := VerifyStripeSignature(payload, header, "whsec_other")
	assert.Error(t, err)
}

func TestVerifyStripeSignatureMissingHeader(t *testing.T) {
	err := VerifyStripeSignature([]byte(`{}`), "", "whsec_abc123")
	assert.Error(t, err)
}

func TestVerifyStripeSignatureMalformedHeader(t *testing.T) {
	err := VerifyStripeSignature([]byte(`{}`), "garbage", "whsec_abc123")
	assert.Error(t, err)

	err = VerifyStripeSignature([]byte(`{}`), "t=123", "whsec_abc123")
	assert.Error(t, err)
}

func TestVerifyStripeSignatureOutsideTolerance(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	secret := "whsec_abc123"

	header := SignWebhookPayload(payload, secret, time.Now().Add(-SignatureTolerance-time.Minute))
	err := VerifyStripeSignature(payload, header, secret)
	assert.Error(t, err)
}

func TestVerifyStripeSignatureNoSecret(t *testing.T) {
	payload := []byte(`{}`)
	header := SignWebhookPayload(payload, "whsec_abc123", time.Now())
	err := VerifyStripeSignature(payload, header, "")
	assert.Error(t, err)
}
