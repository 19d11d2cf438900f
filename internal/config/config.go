package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Port          string
	LogLevel      string
	SessionSecret string
	SessionTTL    time.Duration
	SweepInterval time.Duration
	BaseURL       string

	StripeSecretKey     string
	StripeWebhookSecret string
	StripePriceID       string
	PremiumPrice        int64

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
}

// NewConfig loads configuration from an optional moneycheck.yaml and environment variables
func NewConfig() (*Config, error) {
	return Load("")
}

// Load reads configuration, preferring environment variables over the file at path.
// An empty path searches the working directory for moneycheck.yaml.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", "2h")
	v.SetDefault("SWEEP_INTERVAL", "10m")
	v.SetDefault("BASE_URL", "http://localhost:3000")
	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	v.SetDefault("STRIPE_PRICE_ID", "")
	v.SetDefault("PREMIUM_PRICE", 500)
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", "587")
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SENDER_EMAIL", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("moneycheck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Port:                v.GetString("PORT"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		SessionSecret:       v.GetString("SESSION_SECRET"),
		SessionTTL:          v.GetDuration("SESSION_TTL"),
		SweepInterval:       v.GetDuration("SWEEP_INTERVAL"),
		BaseURL:             v.GetString("BASE_URL"),
		StripeSecretKey:     v.GetString("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: v.GetString("STRIPE_WEBHOOK_SECRET"),
		StripePriceID:       v.GetString("STRIPE_PRICE_ID"),
		PremiumPrice:        v.GetInt64("PREMIUM_PRICE"),
		SMTPHost:            v.GetString("SMTP_HOST"),
		SMTPPort:            v.GetString("SMTP_PORT"),
		SMTPUsername:        v.GetString("SMTP_USERNAME"),
		SMTPPassword:        v.GetString("SMTP_PASSWORD"),
		SenderEmail:         v.GetString("SENDER_EMAIL"),
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.SweepInterval <= 0 {
		return nil, fmt.Errorf("SWEEP_INTERVAL must be positive")
	}

	return cfg, nil
}

// PaymentsEnabled reports whether Stripe checkout is configured
func (c *Config) PaymentsEnabled() bool {
	return c.StripeSecretKey != "" && c.StripePriceID != ""
}

// MailEnabled reports whether receipt email is configured
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SenderEmail != ""
}
