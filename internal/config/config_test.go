// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Cart.SessionTTL)
	assert.Equal(t, "session_id", cfg.Cart.CookieName)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CART_SESSION_TTL", "48h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://teromix.ge, https://www.teromix.ge")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 48*time.Hour, cfg.Cart.SessionTTL)
	assert.Equal(t, []string{"https://teromix.ge", "https://www.teromix.ge"}, cfg.Security.CORSAllowedOrigins)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Cart.SessionTTL = 0
	assert.Error(t, cfg.Validate())

	cfg.Cart.SessionTTL = time.Hour
	cfg.Database.Host = ""
	assert.Error(t, cfg.Validate())
}

func TestConnectionStrings(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Contains(t, cfg.GetDatabaseDSN(), "host=localhost")
	assert.Contains(t, cfg.GetDatabaseDSN(), "dbname=teromix_db")
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}
