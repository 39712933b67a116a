package subscriptionValidator

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutApp() *fiber.App {
	app := fiber.New()
	app.Post("/checkout", Checkout(), func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": true})
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestCheckoutMissingPriceID(t *testing.T) {
	app := newCheckoutApp()

	resp, body := postJSON(t, app, "/checkout",
		`{"successUrl": "https://example.com/ok", "cancelUrl": "https://example.com/no"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Price ID is required!", body["message"])
}

func TestCheckoutBlankPriceID(t *testing.T) {
	app := newCheckoutApp()

	resp, body := postJSON(t, app, "/checkout",
		`{"priceId": "   ", "successUrl": "https://example.com/ok", "cancelUrl": "https://example.com/no"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Price ID is required!", body["message"])
}

func TestCheckoutMissingURLs(t *testing.T) {
	app := newCheckoutApp()

	resp, body := postJSON(t, app, "/checkout", `{"priceId": "price_123"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Success URL is required!", body["message"])

	resp, body = postJSON(t, app, "/checkout",
		`{"priceId": "price_123", "successUrl": "https://example.com/ok"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Cancel URL is required!", body["message"])
}

func TestCheckoutValidBody(t *testing.T) {
	app := newCheckoutApp()

	resp, _ := postJSON(t, app, "/checkout",
		`{"priceId": "price_123", "successUrl": "https://example.com/ok", "cancelUrl": "https://example.com/no"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPortalMissingReturnURL(t *testing.T) {
	app := fiber.New()
	app.Post("/portal", Portal(), func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": true})
	})

	resp, body := postJSON(t, app, "/portal", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Return URL is required!", body["message"])

	resp, _ = postJSON(t, app, "/portal", `{"returnUrl": "https://example.com/account"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
