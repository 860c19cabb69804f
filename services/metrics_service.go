package services

import (
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"

	"storefront-service/models"
)

const (
	recentLimit = 20
	// seenEventCap bounds the redelivery dedup set. A redelivery arriving
	// after this many intervening events would be counted again.
	seenEventCap = 512
)

// MetricsService folds verified payment events into process-wide aggregate
// counters. State lives from process start to process stop; persistence is
// deliberately out of scope.
type MetricsService struct {
	mu       sync.Mutex
	kpis     models.KPIs
	recent   []models.MetricsEvent
	seen     map[string]struct{}
	seenFIFO []string
	logger   *zap.Logger
}

func NewMetricsService(logger *zap.Logger) *MetricsService {
	return &MetricsService{
		seen:   make(map[string]struct{}),
		logger: logger,
	}
}

// Apply dispatches a verified Stripe event into the counters. Unrecognized
// event types are ignored so new provider events never break ingestion.
func (m *MetricsService) Apply(event stripe.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.isDuplicate(event.ID) {
		m.logger.Info("Skipping redelivered webhook event", zap.String("event_id", event.ID))
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			m.logger.Error("Failed to unmarshal checkout session", zap.Error(err))
			return
		}
		amount := float64(sess.AmountTotal) / 100
		m.kpis.Revenue += amount
		m.kpis.Orders++
		if sess.Mode == stripe.CheckoutSessionModeSubscription {
			m.kpis.ActiveSubs++
		}
		m.pushRecent("order", map[string]any{
			"id":       sess.ID,
			"mode":     string(sess.Mode),
			"amount":   amount,
			"customer": sess.CustomerEmail,
		})

	case "customer.subscription.created":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			m.logger.Error("Failed to unmarshal subscription", zap.Error(err))
			return
		}
		mrr := subscriptionMRR(&sub)
		m.kpis.MRR += mrr
		m.kpis.ActiveSubs++
		m.pushRecent("subscription_created", map[string]any{"id": sub.ID, "mrr": mrr})

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			m.logger.Error("Failed to unmarshal subscription", zap.Error(err))
			return
		}
		mrr := subscriptionMRR(&sub)
		m.kpis.MRR = math.Max(0, m.kpis.MRR-mrr)
		if m.kpis.ActiveSubs > 0 {
			m.kpis.ActiveSubs--
		}
		m.pushRecent("subscription_canceled", map[string]any{"id": sub.ID, "mrr": mrr})

	default:
		m.logger.Info("Ignoring webhook event type", zap.String("event_type", string(event.Type)))
	}
}

// Snapshot returns a copy safe to serve while events keep arriving.
func (m *MetricsService) Snapshot() models.MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	recent := make([]models.MetricsEvent, len(m.recent))
	copy(recent, m.recent)
	return models.MetricsSnapshot{KPIs: m.kpis, Recent: recent}
}

// isDuplicate records the event ID and reports whether it was already seen.
// Must run with the mutex held.
func (m *MetricsService) isDuplicate(id string) bool {
	if id == "" {
		return false
	}
	if _, ok := m.seen[id]; ok {
		return true
	}
	m.seen[id] = struct{}{}
	m.seenFIFO = append(m.seenFIFO, id)
	if len(m.seenFIFO) > seenEventCap {
		oldest := m.seenFIFO[0]
		m.seenFIFO = m.seenFIFO[1:]
		delete(m.seen, oldest)
	}
	return false
}

// pushRecent prepends an entry and drops the oldest past the cap. Must run
// with the mutex held.
func (m *MetricsService) pushRecent(kind string, data map[string]any) {
	entry := models.MetricsEvent{TS: time.Now().UTC(), Type: kind, Data: data}
	m.recent = append([]models.MetricsEvent{entry}, m.recent...)
	if len(m.recent) > recentLimit {
		m.recent = m.recent[:recentLimit]
	}
}

func subscriptionMRR(sub *stripe.Subscription) float64 {
	var total int64
	if sub.Items != nil {
		for _, item := range sub.Items.Data {
			if item.Price != nil {
				total += item.Price.UnitAmount
			}
		}
	}
	return float64(total) / 100
}
