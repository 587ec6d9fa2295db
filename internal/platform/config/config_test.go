package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost:5432/accounts")

	cfg, err := LoadConfig(AccountService)
	require.NoError(t, err)

	assert.Equal(t, AccountService, cfg.ServiceName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file://migrations/account", cfg.MigrationsPath)
	assert.Equal(t, 3*time.Second, cfg.CustomerClientTimeout)
	assert.Equal(t, 3, cfg.PostingMaxRetries)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IsProduction)
}

func TestLoadConfig_CustomerServiceDefaults(t *testing.T) {
	cfg, err := LoadConfig(CustomerService)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "file://migrations/customer", cfg.MigrationsPath)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("CUSTOMER_SERVICE_URL", "http://customers:8081/")
	t.Setenv("CUSTOMER_CLIENT_TIMEOUT", "750ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:4200, https://console.example.com")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig(AccountService)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "http://customers:8081", cfg.CustomerServiceURL)
	assert.Equal(t, 750*time.Millisecond, cfg.CustomerClientTimeout)
	assert.Equal(t, []string{"http://localhost:4200", "https://console.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := LoadConfig(AccountService)
	assert.ErrorContains(t, err, "SHUTDOWN_TIMEOUT")
}
