package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront-service/config"
	"storefront-service/controllers"
	"storefront-service/logger"
	"storefront-service/repository"
	"storefront-service/routes"
	"storefront-service/services"
	"storefront-service/sessions"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("[Storefront] Failed to load config: ", err)
	}

	zlog := logger.Initialize(cfg.Env)
	defer zlog.Sync()

	userRepo := repository.NewFileUserRepo(cfg.UsersFile)
	productRepo := repository.NewFileProductRepo(cfg.ProductsFile)
	sessionStore := sessions.NewStore(cfg.SessionTTL)

	stripeSvc := services.NewStripeService(cfg.StripeSecretKey, cfg.StripeWebhookKey, cfg.BaseURL)
	authSvc := services.NewAuthService(userRepo, cfg.AdminInviteCode, zlog)
	checkoutSvc := services.NewCheckoutService(productRepo, stripeSvc, zlog)
	metricsSvc := services.NewMetricsService(zlog)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(zlog))

	routes.RegisterRoutes(r, routes.Controllers{
		Auth:     &controllers.AuthController{Auth: authSvc, Sessions: sessionStore, Logger: zlog},
		Products: &controllers.ProductController{Products: productRepo, Logger: zlog},
		Checkout: &controllers.CheckoutController{Checkout: checkoutSvc, Logger: zlog},
		Metrics:  &controllers.MetricsController{Metrics: metricsSvc},
		Webhook:  &controllers.WebhookController{Stripe: stripeSvc, Metrics: metricsSvc, Logger: zlog},
	}, sessionStore, cfg.PublicDir)

	zlog.Info("Storefront running", zap.String("base_url", cfg.BaseURL), zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("[Storefront] Server failed: ", err)
	}
}
