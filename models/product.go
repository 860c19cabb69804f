package models

// Product is a read-only catalog entry. A product may sell one-time,
// as a subscription, or both; absent price IDs are empty strings.
type Product struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Image               string   `json:"image"`
	Highlights          []string `json:"highlights"`
	OneTimePriceID      string   `json:"oneTimePriceId,omitempty"`
	SubscriptionPriceID string   `json:"subscriptionPriceId,omitempty"`
}

// LineItem is a client-submitted cart entry. Untrusted: the price ID is
// validated against the catalog before any provider call.
type LineItem struct {
	PriceID string `json:"priceId"`
	Qty     int64  `json:"qty"`
}
