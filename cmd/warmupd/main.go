package main

import (
	"net/http"
	"os"

	"github.com/dvcrn/claude-warmup/internal/app"
	"github.com/dvcrn/claude-warmup/internal/config"
	"github.com/dvcrn/claude-warmup/internal/logger"
	"github.com/dvcrn/claude-warmup/internal/store"
)

func main() {
	log := logger.New()
	cfg := config.FromEnv()

	var st store.Store
	switch {
	case cfg.StaticAccessToken != "":
		log.Info().Msg("📝 Using pre-issued access token, no store required")
	case cfg.RedisURL != "":
		redisStore, err := store.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize redis store")
		}
		st = redisStore
		log.Info().Msg("🔑 Using redis refresh token store")
	default:
		log.Fatal().Msg("Either REDIS_URL or CLAUDE_ACCESS_TOKEN must be set")
	}

	srv := app.NewServer(cfg, st, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "9876"
	}

	log.Info().Str("port", port).Msg("Starting warmup server")
	log.Fatal().Err(http.ListenAndServe(":"+port, srv)).Msg("Server failed to start")
}
