package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Service names, used for defaults, logs, metrics and traces.
const (
	AccountService  = "account-service"
	CustomerService = "customer-service"
)

// Config holds application configuration.
type Config struct {
	ServiceName   string
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	LogLevel      string

	// MigrationsPath is a golang-migrate source URL, e.g. file://migrations/account
	MigrationsPath string

	// HTTP server
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Customer gateway (account service only)
	CustomerServiceURL       string
	CustomerClientTimeout    time.Duration
	CustomerClientMaxRetries int
	CustomerClientBackoff    time.Duration

	// Posting retries on serialization failures
	PostingMaxRetries   int
	PostingRetryBackoff time.Duration

	// Middleware
	RateLimit          string // ulule/limiter format, e.g. "100-S"
	CORSAllowedOrigins []string

	// OTLPEndpoint enables trace export when set (host:port of an OTLP gRPC collector).
	OTLPEndpoint string
}

// defaultsFor returns the per-service defaults that differ between binaries.
func defaultsFor(service string) (port string, migrations string) {
	switch service {
	case CustomerService:
		return "8081", "file://migrations/customer"
	default:
		return "8080", "file://migrations/account"
	}
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig(service string) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	port, migrations := defaultsFor(service)

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", port)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MIGRATIONS_PATH", migrations)
	v.SetDefault("HTTP_READ_TIMEOUT", "10s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "15s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("CUSTOMER_SERVICE_URL", "http://localhost:8081")
	v.SetDefault("CUSTOMER_CLIENT_TIMEOUT", "3s")
	v.SetDefault("CUSTOMER_CLIENT_MAX_RETRIES", 2)
	v.SetDefault("CUSTOMER_CLIENT_BACKOFF", "100ms")
	v.SetDefault("POSTING_MAX_RETRIES", 3)
	v.SetDefault("POSTING_RETRY_BACKOFF", "20ms")
	v.SetDefault("RATE_LIMIT", "100-S")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("OTLP_ENDPOINT", "")

	// Actual environment variables override both the defaults and the .env file.
	v.AutomaticEnv()

	cfg := &Config{ServiceName: service}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = strings.ToLower(v.GetString("LOG_LEVEL"))
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	var err error
	if cfg.ReadTimeout, err = duration(v, "HTTP_READ_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = duration(v, "HTTP_WRITE_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = duration(v, "SHUTDOWN_TIMEOUT"); err != nil {
		return nil, err
	}

	cfg.CustomerServiceURL = strings.TrimRight(v.GetString("CUSTOMER_SERVICE_URL"), "/")
	if cfg.CustomerClientTimeout, err = duration(v, "CUSTOMER_CLIENT_TIMEOUT"); err != nil {
		return nil, err
	}
	cfg.CustomerClientMaxRetries = v.GetInt("CUSTOMER_CLIENT_MAX_RETRIES")
	if cfg.CustomerClientBackoff, err = duration(v, "CUSTOMER_CLIENT_BACKOFF"); err != nil {
		return nil, err
	}

	cfg.PostingMaxRetries = v.GetInt("POSTING_MAX_RETRIES")
	if cfg.PostingRetryBackoff, err = duration(v, "POSTING_RETRY_BACKOFF"); err != nil {
		return nil, err
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.OTLPEndpoint = v.GetString("OTLP_ENDPOINT")

	return cfg, nil
}

// duration parses a Go duration string (e.g., "60s", "1h").
func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s ('%s'): %w", key, raw, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
