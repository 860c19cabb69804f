package controllers

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v80/webhook"
	"go.uber.org/zap"

	"storefront-service/services"
)

const testWebhookSecret = "whsec_test_secret"

func newWebhookRouter(t *testing.T) (*gin.Engine, *services.MetricsService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	metricsSvc := services.NewMetricsService(zap.NewNop())
	wc := &WebhookController{
		Stripe:  &services.StripeService{WebhookKey: testWebhookSecret},
		Metrics: metricsSvc,
		Logger:  zap.NewNop(),
	}

	r := gin.New()
	r.POST("/webhook", wc.StripeWebhook)
	return r, metricsSvc
}

// signedRequest builds a webhook delivery carrying a genuine Stripe-style
// signature over the raw payload, so the real verification path runs.
func signedRequest(t *testing.T, payload []byte) *http.Request {
	t.Helper()
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, testWebhookSecret)
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig)))
	return req
}

func TestStripeWebhook(t *testing.T) {
	checkoutPayload := []byte(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_1", "mode": "payment", "amount_total": 2000, "customer_email": "a@x.com"}}
	}`)

	t.Run("Valid signature folds event into metrics", func(t *testing.T) {
		r, metricsSvc := newWebhookRouter(t)

		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, signedRequest(t, checkoutPayload))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"received":true`)

		snap := metricsSvc.Snapshot()
		assert.Equal(t, 20.0, snap.KPIs.Revenue)
		assert.Equal(t, 1, snap.KPIs.Orders)
		require.Len(t, snap.Recent, 1)
		assert.Equal(t, "order", snap.Recent[0].Type)
	})

	t.Run("Bad signature - 400, metrics untouched", func(t *testing.T) {
		r, metricsSvc := newWebhookRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(checkoutPayload))
		req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		snap := metricsSvc.Snapshot()
		assert.Equal(t, 0, snap.KPIs.Orders)
	})

	t.Run("Missing signature header - 400", func(t *testing.T) {
		r, _ := newWebhookRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(checkoutPayload))
		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Unknown event kind is acknowledged", func(t *testing.T) {
		r, metricsSvc := newWebhookRouter(t)

		payload := []byte(`{"id": "evt_2", "type": "invoice.paid", "data": {"object": {"id": "in_1"}}}`)
		recorder := httptest.NewRecorder()
		r.ServeHTTP(recorder, signedRequest(t, payload))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"received":true`)
		assert.Equal(t, 0, metricsSvc.Snapshot().KPIs.Orders)
	})
}
