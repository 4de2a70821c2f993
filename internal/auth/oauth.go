package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	// DefaultTokenURL is the Anthropic OAuth token endpoint
	DefaultTokenURL = "https://console.anthropic.com/v1/oauth/token"
	// ClientID is the OAuth client ID for Claude Code
	ClientID = "9d1c250a-e61b-44d9-88ed-5944d1962f5e"
)

// ExchangeResult pairs a short-lived access token with the refresh token the
// provider wants used next. An empty RefreshToken means no rotation occurred
// and the caller must keep using the previous refresh token.
type ExchangeResult struct {
	AccessToken  string
	RefreshToken string
}

// Exchanger performs a refresh-token exchange against the OAuth provider.
type Exchanger interface {
	Exchange(ctx context.Context, refreshToken string) (ExchangeResult, error)
}

// OAuthExchanger exchanges refresh tokens at the Anthropic token endpoint.
type OAuthExchanger struct {
	TokenURL   string
	HTTPClient *http.Client
}

// NewOAuthExchanger creates an exchanger against the default token endpoint.
func NewOAuthExchanger() *OAuthExchanger {
	return &OAuthExchanger{
		TokenURL:   DefaultTokenURL,
		HTTPClient: http.DefaultClient,
	}
}

// Exchange performs exactly one token-exchange attempt. There is deliberately
// no retry: a refresh token may be single-use, and retrying could consume a
// rotated token the first attempt already burned. The external schedule is the
// retry mechanism.
func (e *OAuthExchanger) Exchange(ctx context.Context, refreshToken string) (ExchangeResult, error) {
	body, err := json.Marshal(TokenRefreshRequest{
		GrantType:    "refresh_token",
		RefreshToken: refreshToken,
		ClientID:     ClientID,
	})
	if err != nil {
		return ExchangeResult{}, fmt.Errorf("failed to marshal refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.TokenURL, bytes.NewReader(body))
	if err != nil {
		return ExchangeResult{}, fmt.Errorf("failed to build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.HTTPClient.Do(req)
	if err != nil {
		return ExchangeResult{}, fmt.Errorf("failed to make refresh request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errorBody bytes.Buffer
		errorBody.ReadFrom(resp.Body)
		return ExchangeResult{}, fmt.Errorf("token refresh failed with status %d: %s", resp.StatusCode, RedactTokens(errorBody.String()))
	}

	var tokenResp TokenRefreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return ExchangeResult{}, fmt.Errorf("failed to decode refresh response: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return ExchangeResult{}, fmt.Errorf("token refresh response is missing access_token")
	}

	return ExchangeResult{
		AccessToken:  tokenResp.AccessToken,
		RefreshToken: tokenResp.RefreshToken,
	}, nil
}
