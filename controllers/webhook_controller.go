package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"

	"storefront-service/services"
)

// WebhookParser verifies and decodes inbound provider events.
type WebhookParser interface {
	ParseWebhook(r *http.Request) (stripe.Event, error)
}

type WebhookController struct {
	Stripe  WebhookParser
	Metrics *services.MetricsService
	Logger  *zap.Logger
}

// StripeWebhook receives and ingests provider events. Signature
// verification runs over the exact raw body bytes, so no body-consuming
// middleware may run before this handler. Once the signature checks out the
// provider gets a 200 regardless of event kind, which stops redelivery of
// merely-uninteresting events.
func (wc *WebhookController) StripeWebhook(c *gin.Context) {
	event, err := wc.Stripe.ParseWebhook(c.Request)
	if err != nil {
		wc.Logger.Warn("Stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook"})
		return
	}

	wc.Metrics.Apply(event)
	c.JSON(http.StatusOK, gin.H{"received": true})
}
