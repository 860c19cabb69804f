package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "storefront-service/errors"
	"storefront-service/middleware"
	"storefront-service/models"
)

// CheckoutProvider is the checkout service surface the controller needs.
type CheckoutProvider interface {
	CreateCheckout(mode string, items []models.LineItem, sessionEmail, guestEmail string) (string, error)
}

type CheckoutController struct {
	Checkout CheckoutProvider
	Logger   *zap.Logger
}

type checkoutRequest struct {
	Mode       string            `json:"mode"`
	LineItems  []models.LineItem `json:"lineItems"`
	GuestEmail string            `json:"guestEmail"`
}

// CreateCheckoutSession handles both logged-in and guest checkouts. A
// session's email is authoritative; the guest email is only consulted
// when no session exists.
func (cc *CheckoutController) CreateCheckoutSession(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	sessionEmail := ""
	if sess, ok := middleware.CurrentSession(c); ok {
		sessionEmail = sess.Email
	}

	url, err := cc.Checkout.CreateCheckout(req.Mode, req.LineItems, sessionEmail, req.GuestEmail)
	if err != nil {
		apperrors.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
