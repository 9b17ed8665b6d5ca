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

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.Equal(t, time.Second, cfg.RateLimitWrite)
}

func TestLoadDatabaseURLOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "host=db user=agora dbname=agora port=5432")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "host=db user=agora dbname=agora port=5432", cfg.DatabaseURL)
}

func TestLoadRejectsBadRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_WRITE", "often")

	_, err := Load()
	assert.Error(t, err)
}
