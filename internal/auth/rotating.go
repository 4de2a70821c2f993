package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/dvcrn/claude-warmup/internal/store"
	"github.com/rs/zerolog"
)

// RotatingProvider resolves access tokens by exchanging the current refresh
// token and persists rotated refresh tokens back to the store before the token
// is handed out. Losing a rotated token locks the account out until an
// operator re-seeds it, so a persistence failure fails the whole resolution.
type RotatingProvider struct {
	store     store.Store
	seed      string
	exchanger Exchanger
	logger    *zerolog.Logger
	mu        sync.Mutex
}

// NewRotatingProvider creates a store-backed rotating provider. seed is the
// bootstrap refresh token, consulted only while the store is empty.
func NewRotatingProvider(s store.Store, seed string, exchanger Exchanger, logger *zerolog.Logger) *RotatingProvider {
	return &RotatingProvider{
		store:     s,
		seed:      seed,
		exchanger: exchanger,
		logger:    logger,
	}
}

// ResolveAccessToken runs source -> exchange -> conditional persist as one
// unit. Invocations within this process are serialized so two overlapping runs
// cannot both consume the same refresh token; when the store offers an
// advisory lock it is held across the unit to cover other instances too.
func (p *RotatingProvider) ResolveAccessToken(ctx context.Context) (string, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if locker, ok := p.store.(store.Locker); ok {
		unlock, acquired, err := locker.Lock(ctx)
		if err != nil {
			return "", false, err
		}
		if !acquired {
			return "", false, fmt.Errorf("another warmup run is currently rotating the refresh token")
		}
		defer unlock()
	}

	refreshToken, err := p.currentRefreshToken(ctx)
	if err != nil {
		return "", false, err
	}

	result, err := p.exchanger.Exchange(ctx, refreshToken)
	if err != nil {
		return "", false, err
	}

	rotated := result.RefreshToken != "" && result.RefreshToken != refreshToken
	if rotated {
		if err := p.store.Set(ctx, result.RefreshToken); err != nil {
			return "", false, fmt.Errorf("failed to persist rotated refresh token: %w", err)
		}
		if p.logger != nil {
			p.logger.Info().Msg("Refresh token was rotated, new token persisted")
		}
	}

	return result.AccessToken, rotated, nil
}

// currentRefreshToken resolves the refresh token with store-then-seed
// precedence. A store read failure is surfaced rather than falling back to the
// seed: the store may hold a rotated token the seed no longer matches.
func (p *RotatingProvider) currentRefreshToken(ctx context.Context) (string, error) {
	stored, err := p.store.Get(ctx)
	if err != nil {
		return "", err
	}
	if stored != "" {
		if p.logger != nil {
			p.logger.Debug().Str("source", "store").Msg("Resolved refresh token")
		}
		return stored, nil
	}

	if p.seed != "" {
		if p.logger != nil {
			p.logger.Debug().Str("source", "seed").Msg("Resolved refresh token")
		}
		return p.seed, nil
	}

	return "", fmt.Errorf("no refresh token available: store is empty and CLAUDE_REFRESH_TOKEN is not set")
}
