package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	Env     string `mapstructure:"ENV"`

	// Storage file paths.
	LedgerFile     string `mapstructure:"LEDGER_FILE"`
	ReviewFile     string `mapstructure:"REVIEW_FILE"`
	SubscriberFile string `mapstructure:"SUBSCRIBER_FILE"`

	// Stripe configuration.
	StripeSecretKey      string `mapstructure:"STRIPE_SECRET_KEY"`
	StripePublishableKey string `mapstructure:"STRIPE_PUBLISHABLE_KEY"`
	DepositAmount        int64  `mapstructure:"DEPOSIT_AMOUNT"`
	DepositCurrency      string `mapstructure:"DEPOSIT_CURRENCY"`

	// SMTP configuration for booking notifications.
	SMTPHost      string `mapstructure:"SMTP_HOST"`
	SMTPPort      int    `mapstructure:"SMTP_PORT"`
	SMTPUser      string `mapstructure:"SMTP_USER"`
	SMTPPassword  string `mapstructure:"SMTP_PASSWORD"`
	SenderAddress string `mapstructure:"SENDER_ADDRESS"`
	OwnerAddress  string `mapstructure:"OWNER_ADDRESS"`

	// Booking calendar rules.
	ClosureWeekday string `mapstructure:"CLOSURE_WEEKDAY"`
	HorizonDays    int    `mapstructure:"HORIZON_DAYS"`
	HorizonCap     int    `mapstructure:"HORIZON_CAP"`

	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

// Load reads configuration from a config.yaml file (if present) and the
// environment, applies defaults, and validates the result.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LEDGER_FILE", "data/bookings.json")
	viper.SetDefault("REVIEW_FILE", "data/reviews.json")
	viper.SetDefault("SUBSCRIBER_FILE", "data/subscribers.json")
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_PUBLISHABLE_KEY", "")
	viper.SetDefault("DEPOSIT_AMOUNT", 25000)
	viper.SetDefault("DEPOSIT_CURRENCY", "usd")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SENDER_ADDRESS", "")
	viper.SetDefault("OWNER_ADDRESS", "")
	viper.SetDefault("CLOSURE_WEEKDAY", "Sunday")
	viper.SetDefault("HORIZON_DAYS", 30)
	viper.SetDefault("HORIZON_CAP", 90)
	viper.SetDefault("ALLOWED_ORIGINS", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if _, err := cfg.Closure(); err != nil {
		return nil, err
	}
	if cfg.DepositAmount < 0 {
		return nil, fmt.Errorf("DEPOSIT_AMOUNT must not be negative, got %d", cfg.DepositAmount)
	}
	if cfg.HorizonDays < 1 || cfg.HorizonCap < 1 {
		return nil, fmt.Errorf("HORIZON_DAYS and HORIZON_CAP must be at least 1")
	}

	return &cfg, nil
}

// Closure resolves the configured closure weekday name.
func (c *Config) Closure() (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), c.ClosureWeekday) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid CLOSURE_WEEKDAY %q", c.ClosureWeekday)
}

// Origins splits the comma-separated allowed origin list.
func (c *Config) Origins() []string {
	if c.AllowedOrigins == "" {
		return nil
	}
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// MailConfigured reports whether enough SMTP settings are present to send email.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SenderAddress != "" && c.OwnerAddress != ""
}
