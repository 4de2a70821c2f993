package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_ReadsAllValues(t *testing.T) {
	t.Setenv("WARMUP_SECRET", "s3cret")
	t.Setenv("CLAUDE_REFRESH_TOKEN", "seed-token")
	t.Setenv("CLAUDE_ACCESS_TOKEN", "static-token")
	t.Setenv("WARMUP_MESSAGE", "ping")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := FromEnv()

	assert.Equal(t, "s3cret", cfg.WarmupSecret)
	assert.Equal(t, "seed-token", cfg.SeedRefreshToken)
	assert.Equal(t, "static-token", cfg.StaticAccessToken)
	assert.Equal(t, "ping", cfg.WarmupMessage)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestFromEnv_DefaultsWarmupMessage(t *testing.T) {
	t.Setenv("WARMUP_MESSAGE", "")

	cfg := FromEnv()

	assert.Equal(t, DefaultWarmupMessage, cfg.WarmupMessage)
}
