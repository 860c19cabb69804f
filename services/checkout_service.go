package services

import (
	"strings"

	"go.uber.org/zap"

	apperrors "storefront-service/errors"
	"storefront-service/models"
	"storefront-service/repository"
)

const (
	ModePayment      = "payment"
	ModeSubscription = "subscription"
)

// PaymentProvider creates hosted checkout sessions. Implemented by
// StripeService; mocked in tests.
type PaymentProvider interface {
	CreateCheckoutSession(mode string, items []models.LineItem, customerEmail string) (string, error)
}

type CheckoutService struct {
	products repository.ProductRepository
	provider PaymentProvider
	logger   *zap.Logger
}

func NewCheckoutService(products repository.ProductRepository, provider PaymentProvider, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{products: products, provider: provider, logger: logger}
}

// CreateCheckout validates the cart against the catalog's price partitions,
// resolves the paying identity and requests a provider-hosted checkout
// session. The cart arrives from an untrusted client, so only price IDs the
// catalog lists for the requested mode are accepted.
func (s *CheckoutService) CreateCheckout(mode string, items []models.LineItem, sessionEmail, guestEmail string) (string, error) {
	if len(items) == 0 {
		return "", apperrors.Validation("No line items")
	}
	if mode != ModePayment && mode != ModeSubscription {
		return "", apperrors.Validation("Invalid mode")
	}

	products, err := s.products.List()
	if err != nil {
		return "", err
	}

	oneTime := make(map[string]struct{})
	subs := make(map[string]struct{})
	for _, p := range products {
		if p.OneTimePriceID != "" {
			oneTime[p.OneTimePriceID] = struct{}{}
		}
		if p.SubscriptionPriceID != "" {
			subs[p.SubscriptionPriceID] = struct{}{}
		}
	}

	for _, li := range items {
		if mode == ModePayment {
			if _, ok := oneTime[li.PriceID]; !ok {
				return "", apperrors.Validation(`Cart has subscription items. Use "Checkout (Subscription)".`)
			}
		} else {
			if _, ok := subs[li.PriceID]; !ok {
				return "", apperrors.Validation(`Cart has one-time items. Use "Checkout (One-time)".`)
			}
		}
	}

	// A logged-in email always wins over a client-supplied guest email.
	customerEmail := sessionEmail
	if customerEmail == "" {
		customerEmail = strings.TrimSpace(guestEmail)
	}
	if customerEmail == "" {
		return "", apperrors.Validation("Email required (login or guest email)")
	}

	url, err := s.provider.CreateCheckoutSession(mode, items, customerEmail)
	if err != nil {
		s.logger.Error("Failed to create checkout session", zap.Error(err))
		return "", apperrors.Wrap(apperrors.ErrCheckoutFailed, err)
	}
	return url, nil
}
