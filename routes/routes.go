package routes

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"storefront-service/controllers"
	"storefront-service/middleware"
	"storefront-service/models"
	"storefront-service/sessions"
)

type Controllers struct {
	Auth     *controllers.AuthController
	Products *controllers.ProductController
	Checkout *controllers.CheckoutController
	Metrics  *controllers.MetricsController
	Webhook  *controllers.WebhookController
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers, store *sessions.Store, publicDir string) {
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.Sessions(store))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// The webhook handler reads the raw body itself for signature
	// verification; nothing that touches the body runs before it.
	r.POST("/webhook", ctrl.Webhook.StripeWebhook)

	auth := r.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware())
	auth.POST("/signup", ctrl.Auth.Signup)
	auth.POST("/login", ctrl.Auth.Login)
	auth.POST("/logout", ctrl.Auth.Logout)
	auth.GET("/me", ctrl.Auth.Me)

	r.GET("/api/products", ctrl.Products.List)
	r.POST("/create-checkout-session", ctrl.Checkout.CreateCheckoutSession)
	r.GET("/api/metrics", middleware.RequireRole(models.RoleAdmin), ctrl.Metrics.Get)

	// The admin page is gated here; explicit routes always win over the
	// NoRoute static fallback below.
	r.GET("/admin.html", middleware.RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.File(filepath.Join(publicDir, "admin.html"))
	})

	fileServer := http.FileServer(http.Dir(publicDir))
	r.NoRoute(func(c *gin.Context) {
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}
