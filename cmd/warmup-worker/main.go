//go:build js && wasm

package main

import (
	"github.com/syumai/workers"

	"github.com/dvcrn/claude-warmup/internal/app"
	"github.com/dvcrn/claude-warmup/internal/config"
	"github.com/dvcrn/claude-warmup/internal/logger"
	"github.com/dvcrn/claude-warmup/internal/store"
)

func main() {
	log := logger.New()
	cfg := config.FromEnv()

	log.Info().Msg("📦 Using Cloudflare KV refresh token store")
	kvStore, err := store.NewCloudflareKV()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Cloudflare KV store")
	}

	srv := app.NewServer(cfg, kvStore, log)

	// Serve using workers - it handles all the HTTP server setup
	workers.Serve(srv)
}
