package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("PGSQL_URL", "postgres://ledger@localhost/ledger")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://ledger@localhost/ledger", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, CacheBackendMemory, cfg.CacheBackend)
	assert.Equal(t, 5*time.Second, cfg.CacheTTL)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, uint64(3), cfg.StoreReadRetries)
	assert.False(t, cfg.LPCallCapEnforced)
	assert.Equal(t, "USD", cfg.FOFCurrency)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("STORE_TIMEOUT", "not-a-duration")
	t.Setenv("LP_CALL_CAP_ENFORCED", "true")
	t.Setenv("FOF_CURRENCY", " eur ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, CacheBackendRedis, cfg.CacheBackend)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.True(t, cfg.LPCallCapEnforced)
	assert.Equal(t, "EUR", cfg.FOFCurrency)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_UnsupportedFOFCurrency(t *testing.T) {
	for _, raw := range []string{"GBP", "XYZ", " "} {
		viper.Reset()
		t.Setenv("FOF_CURRENCY", raw)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "USD", cfg.FOFCurrency, "FOF_CURRENCY=%q", raw)
	}
}

func TestLoadConfig_UnknownCacheBackend(t *testing.T) {
	viper.Reset()
	t.Setenv("CACHE_BACKEND", "memcached")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, CacheBackendMemory, cfg.CacheBackend)
}
