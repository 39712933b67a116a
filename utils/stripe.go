package utils

import (
	"bookwise/config"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// StripeSubscription holds the subscription fields we read back from Stripe.
type StripeSubscription struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Customer string `json:"customer"`
}

type stripeObject struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type stripeErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func stripeClient() (*resty.Client, error) {
	if config.AppConfig.StripeSecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is not configured")
	}
	return resty.New().
		SetBaseURL(config.AppConfig.StripeApiURL).
		SetAuthToken(config.AppConfig.StripeSecretKey).
		SetTimeout(15 * time.Second), nil
}

func stripeError(resp *resty.Response) error {
	var body stripeErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error.Message != "" {
		return fmt.Errorf("stripe API error (%d): %s", resp.StatusCode(), body.Error.Message)
	}
	return fmt.Errorf("stripe API error (%d): %s", resp.StatusCode(), resp.String())
}

// CreateStripeCustomer creates a provider customer tagged with the local user
// id and returns the customer id.
func CreateStripeCustomer(email, name string, userID uint) (string, error) {
	client, err := stripeClient()
	if err != nil {
		return "", err
	}

	resp, err := client.R().
		SetFormData(map[string]string{
			"email":             email,
			"name":              name,
			"metadata[user_id]": fmt.Sprintf("%d", userID),
		}).
		Post("/customers")
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %v", err)
	}
	if resp.StatusCode() != 200 {
		return "", stripeError(resp)
	}

	var customer stripeObject
	if err := json.Unmarshal(resp.Body(), &customer); err != nil {
		return "", fmt.Errorf("invalid customer response: %v", err)
	}
	return customer.ID, nil
}

// CreateCheckoutSession starts a subscription checkout for the given price and
// returns the hosted redirect URL. The local user id travels in the session
// metadata so the webhook can map the session back to the user.
func CreateCheckoutSession(customerID, priceID, successURL, cancelURL string, userID uint) (string, error) {
	client, err := stripeClient()
	if err != nil {
		return "", err
	}

	resp, err := client.R().
		SetFormData(map[string]string{
			"mode":                       "subscription",
			"customer":                   customerID,
			"line_items[0][price]":       priceID,
			"line_items[0][quantity]":    "1",
			"success_url":                successURL,
			"cancel_url":                 cancelURL,
			"metadata[user_id]":          fmt.Sprintf("%d", userID),
			"subscription_data[metadata][user_id]": fmt.Sprintf("%d", userID),
		}).
		Post("/checkout/sessions")
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %v", err)
	}
	if resp.StatusCode() != 200 {
		return "", stripeError(resp)
	}

	var session stripeObject
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return "", fmt.Errorf("invalid checkout session response: %v", err)
	}
	return session.URL, nil
}

// CreatePortalSession returns a redirect URL to the provider's self-service
// billing portal for an existing customer.
func CreatePortalSession(customerID, returnURL string) (string, error) {
	client, err := stripeClient()
	if err != nil {
		return "", err
	}

	resp, err := client.R().
		SetFormData(map[string]string{
			"customer":   customerID,
			"return_url": returnURL,
		}).
		Post("/billing_portal/sessions")
	if err != nil {
		return "", fmt.Errorf("failed to create portal session: %v", err)
	}
	if resp.StatusCode() != 200 {
		return "", stripeError(resp)
	}

	var session stripeObject
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return "", fmt.Errorf("invalid portal session response: %v", err)
	}
	return session.URL, nil
}

// GetStripeSubscription fetches the current provider-side state of a
// subscription. Used by the reconciliation job.
func GetStripeSubscription(subscriptionID string) (*StripeSubscription, error) {
	client, err := stripeClient()
	if err != nil {
		return nil, err
	}

	resp, err := client.R().Get("/subscriptions/" + subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscription: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, stripeError(resp)
	}

	var sub StripeSubscription
	if err := json.Unmarshal(resp.Body(), &sub); err != nil {
		return nil, fmt.Errorf("invalid subscription response: %v", err)
	}
	return &sub, nil
}

// SignatureTolerance is the maximum accepted age of a signed webhook payload.
const SignatureTolerance = 5 * time.Minute

// VerifyStripeSignature checks the stripe-signature header against the raw
// payload using the shared webhook secret. The header carries a timestamp and
// one or more v1 signatures: HMAC-SHA256 over "<timestamp>.<payload>".
func VerifyStripeSignature(payload []byte, header, secret string) error {
	if secret == "" {
		return fmt.Errorf("webhook secret is not configured")
	}
	if header == "" {
		return fmt.Errorf("missing stripe-signature header")
	}

	var timestamp string
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		pair := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(pair) != 2 {
			continue
		}
		switch pair[0] {
		case "t":
			timestamp = pair[1]
		case "v1":
			signatures = append(signatures, pair[1])
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return fmt.Errorf("malformed stripe-signature header")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid signature timestamp")
	}
	age := time.Since(time.Unix(ts, 0))
	if age > SignatureTolerance || age < -SignatureTolerance {
		return fmt.Errorf("signature timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, sig := range signatures {
		if hmac.Equal([]byte(expected), []byte(sig)) {
			return nil
		}
	}
	return fmt.Errorf("signature mismatch")
}

// SignWebhookPayload produces a stripe-signature header value for a payload.
// Used by tests and local tooling.
func SignWebhookPayload(payload []byte, secret string, at time.Time) string {
	timestamp := strconv.FormatInt(at.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return fmt.Sprintf("t=%s,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

// LogStripeCall is a small helper for consistent billing logs.
func LogStripeCall(action string, err error) {
	if err != nil {
		log.Printf("[STRIPE] %s failed: %v", action, err)
	}
}
