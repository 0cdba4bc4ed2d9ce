package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "PORT", "AUTH_MODE", "ENRICHMENT_API_URL", "ENRICHMENT_TIMEOUT_SECONDS", "ENRICHMENT_CACHE_TTL_SECONDS", "LANGFUSE_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "jwt", cfg.AuthMode)
	assert.Equal(t, "https://api.datamuse.com", cfg.EnrichmentURL)
	assert.Equal(t, 3*time.Second, cfg.EnrichmentTimeout)
	assert.Equal(t, 6*time.Hour, cfg.EnrichmentCacheTTL)
	assert.False(t, cfg.LangfuseEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("AUTH_MODE", "gateway")
	t.Setenv("ENRICHMENT_TIMEOUT_SECONDS", "10")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.IsGatewayMode())
	assert.Equal(t, 10*time.Second, cfg.EnrichmentTimeout)
}

func TestDurationEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("ENRICHMENT_TIMEOUT_SECONDS", "not-a-number")

	cfg := Load()
	assert.Equal(t, 3*time.Second, cfg.EnrichmentTimeout)
}
