package config

import "github.com/dvcrn/claude-warmup/internal/env"

// DefaultWarmupMessage is sent when no override is configured or provided.
const DefaultWarmupMessage = "Hello! This is a scheduled warmup ping. Please reply with a short greeting."

// Config holds everything the service reads from its environment. It is
// assembled once at the process boundary so the core packages never touch the
// environment themselves.
type Config struct {
	// WarmupSecret is the shared secret the trigger must present as a bearer
	// token.
	WarmupSecret string
	// SeedRefreshToken is the bootstrap refresh token, consulted only when the
	// store holds no value yet.
	SeedRefreshToken string
	// StaticAccessToken, when set, disables rotation entirely and is used as a
	// pre-issued long-lived credential.
	StaticAccessToken string
	// WarmupMessage is the text sent on each warmup request.
	WarmupMessage string
	// RedisURL is the store connection descriptor for the Redis-backed variant.
	RedisURL string
}

// FromEnv assembles the configuration from environment variables.
func FromEnv() Config {
	cfg := Config{}
	cfg.WarmupSecret, _ = env.Get("WARMUP_SECRET")
	cfg.SeedRefreshToken, _ = env.Get("CLAUDE_REFRESH_TOKEN")
	cfg.StaticAccessToken, _ = env.Get("CLAUDE_ACCESS_TOKEN")
	cfg.WarmupMessage, _ = env.Get("WARMUP_MESSAGE")
	cfg.RedisURL, _ = env.Get("REDIS_URL")

	if cfg.WarmupMessage == "" {
		cfg.WarmupMessage = DefaultWarmupMessage
	}
	return cfg
}
