package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port             string
	BaseURL          string
	Env              string
	StripeSecretKey  string
	StripeWebhookKey string
	AdminInviteCode  string
	UsersFile        string
	ProductsFile     string
	PublicDir        string
	SessionTTL       time.Duration
}

func LoadConfig() (*Config, error) {
	port := getEnv("PORT", "3000")
	cfg := &Config{
		Port:             port,
		BaseURL:          getEnv("BASE_URL", "http://localhost:"+port),
		Env:              getEnv("ENV", "development"),
		StripeSecretKey:  os.Getenv("STRIPE_API_KEY"),
		StripeWebhookKey: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		AdminInviteCode:  os.Getenv("ADMIN_INVITE_CODE"),
		UsersFile:        getEnv("USERS_FILE", "data/users.json"),
		ProductsFile:     getEnv("PRODUCTS_FILE", "data/products.json"),
		PublicDir:        getEnv("PUBLIC_DIR", "public"),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "4h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	if cfg.StripeSecretKey == "" || cfg.StripeWebhookKey == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
