package auth

import (
	"context"
	"fmt"
)

// StaticProvider serves a pre-issued long-lived access token. It touches no
// store and never rotates.
type StaticProvider struct {
	token string
}

// NewStaticProvider creates a provider around a long-lived access token.
func NewStaticProvider(token string) *StaticProvider {
	return &StaticProvider{token: token}
}

func (p *StaticProvider) ResolveAccessToken(ctx context.Context) (string, bool, error) {
	if p.token == "" {
		return "", false, fmt.Errorf("CLAUDE_ACCESS_TOKEN is not set")
	}
	return p.token, false, nil
}
