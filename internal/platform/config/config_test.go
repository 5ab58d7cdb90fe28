package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "courtcal", cfg.JWTIssuer)
	assert.Equal(t, "main", cfg.Building)
	assert.Equal(t, "./documents", cfg.DocumentRoot)
	assert.Empty(t, cfg.AI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.Equal(t, 90*time.Second, cfg.AI.Timeout)
	assert.Empty(t, cfg.Audit.Brokers)
	assert.Equal(t, "courtcal.extraction.audit", cfg.Audit.Topic)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("COURTCAL_ADDR", ":9090")
	t.Setenv("COURT_BUILDING", "annex")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("AI_TEMPERATURE", "0.3")
	t.Setenv("AUDIT_KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "annex", cfg.Building)
	assert.Equal(t, "sk-test", cfg.AI.APIKey)
	assert.InDelta(t, 0.3, cfg.AI.Temperature, 1e-6)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.Audit.Brokers)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "not-a-duration")

	_, err := FromEnv()
	require.Error(t, err)
}
