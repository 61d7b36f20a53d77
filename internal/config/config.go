package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field maps 1:1 to an env var.
type Config struct {
	// Server
	Port               int    `mapstructure:"PORT"`
	Env                string `mapstructure:"APP_ENV"` // development | production
	RateLimitPerMinute int    `mapstructure:"RATE_LIMIT_PER_MINUTE"`

	// Store
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	SeedSampleData bool   `mapstructure:"SEED_SAMPLE_DATA"`

	// Redis (optional; empty disables the analytics cache and the alert queue)
	RedisURL          string        `mapstructure:"REDIS_URL"`
	AnalyticsCacheTTL time.Duration `mapstructure:"ANALYTICS_CACHE_TTL"`
	WorkerPoolSize    int           `mapstructure:"WORKER_POOL_SIZE"`

	// Stock alerts
	LowStockThreshold int    `mapstructure:"LOW_STOCK_THRESHOLD"`
	AlertEmail        string `mapstructure:"ALERT_EMAIL"`

	// SMTP
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
}

// ClientConfig configures the console client (stockctl).
type ClientConfig struct {
	APIURL     string        `mapstructure:"INVENTORY_API_URL"`
	APITimeout time.Duration `mapstructure:"INVENTORY_API_TIMEOUT"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := newViper()

	// Sensible defaults for development
	v.SetDefault("PORT", 8000)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 1000)
	v.SetDefault("DATABASE_URL", "sqlite://inventory.db")
	v.SetDefault("SEED_SAMPLE_DATA", true)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("ANALYTICS_CACHE_TTL", 30*time.Second)
	v.SetDefault("WORKER_POOL_SIZE", 2)
	v.SetDefault("LOW_STOCK_THRESHOLD", 10)
	v.SetDefault("ALERT_EMAIL", "")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASSWORD", "")

	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadClient reads the console client configuration.
func LoadClient() (*ClientConfig, error) {
	v := newViper()
	v.SetDefault("INVENTORY_API_URL", "http://localhost:8000")
	v.SetDefault("INVENTORY_API_TIMEOUT", 10*time.Second)

	_ = v.ReadInConfig()

	cfg := &ClientConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newViper returns an isolated viper instance reading env vars and an optional
// .env file from the working directory. A missing file is not an error.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	return v
}
