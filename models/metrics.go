package models

import "time"

// KPIs are the aggregate business counters maintained from payment events.
type KPIs struct {
	Revenue    float64 `json:"revenue"`
	MRR        float64 `json:"mrr"`
	ActiveSubs int     `json:"activeSubs"`
	Orders     int     `json:"orders"`
}

// MetricsEvent is a write-once entry in the recent-event log.
type MetricsEvent struct {
	TS   time.Time      `json:"ts"`
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// MetricsSnapshot is the read-only view served to the admin dashboard.
type MetricsSnapshot struct {
	KPIs   KPIs           `json:"kpis"`
	Recent []MetricsEvent `json:"recent"`
}
