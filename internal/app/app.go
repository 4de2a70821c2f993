package app

import (
	"github.com/rs/zerolog"

	"github.com/dvcrn/claude-warmup/internal/auth"
	"github.com/dvcrn/claude-warmup/internal/claude"
	"github.com/dvcrn/claude-warmup/internal/config"
	"github.com/dvcrn/claude-warmup/internal/server"
	"github.com/dvcrn/claude-warmup/internal/store"
)

// NewServer wires a warmup server from config. The credential provider is
// selected once at startup: a pre-issued long-lived token disables rotation,
// otherwise access tokens come from store-backed refresh token rotation.
func NewServer(cfg config.Config, st store.Store, logger zerolog.Logger) *server.Server {
	var provider auth.CredentialProvider
	if cfg.StaticAccessToken != "" {
		logger.Info().Msg("Using pre-issued access token, rotation disabled")
		provider = auth.NewStaticProvider(cfg.StaticAccessToken)
	} else {
		logger.Info().Msg("Using store-backed refresh token rotation")
		provider = auth.NewRotatingProvider(st, cfg.SeedRefreshToken, auth.NewOAuthExchanger(), &logger)
	}

	return server.New(logger, cfg, provider, claude.NewClient())
}
