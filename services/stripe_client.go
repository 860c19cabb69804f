package services

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"

	"storefront-service/models"
)

// providerTimeout bounds every Stripe API call so a hung provider request
// fails the checkout instead of pinning the handler.
const providerTimeout = 20 * time.Second

type StripeService struct {
	SecretKey  string
	WebhookKey string
	BaseURL    string
}

func NewStripeService(secretKey, webhookKey, baseURL string) *StripeService {
	stripe.Key = secretKey
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: providerTimeout},
	}))
	return &StripeService{SecretKey: secretKey, WebhookKey: webhookKey, BaseURL: baseURL}
}

// CreateCheckoutSession creates a provider-hosted checkout page and returns
// its redirect URL. Line items are assumed already validated against the
// catalog.
func (s *StripeService) CreateCheckoutSession(mode string, items []models.LineItem, customerEmail string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:                stripe.String(mode),
		LineItems:           buildLineItemParams(items),
		CustomerEmail:       stripe.String(customerEmail),
		SuccessURL:          stripe.String(s.BaseURL + "/admin.html?success=true&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:           stripe.String(s.BaseURL + "/index.html?canceled=true"),
		AllowPromotionCodes: stripe.Bool(true),
	}
	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

func buildLineItemParams(items []models.LineItem) []*stripe.CheckoutSessionLineItemParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, li := range items {
		qty := li.Qty
		if qty <= 0 {
			qty = 1
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(li.PriceID),
			Quantity: stripe.Int64(qty),
		})
	}
	return lineItems
}

// ParseWebhook verifies the Stripe-Signature header against the raw request
// body and returns the decoded event. The body is restored afterward.
// API version mismatches are tolerated: the webhook's pinned version is
// controlled from the provider dashboard, not by this SDK.
func (s *StripeService) ParseWebhook(r *http.Request) (stripe.Event, error) {
	var event stripe.Event
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return event, err
	}
	r.Body = io.NopCloser(bytes.NewBuffer(payload))
	sigHeader := r.Header.Get("Stripe-Signature")
	return webhook.ConstructEventWithOptions(payload, sigHeader, s.WebhookKey, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}
