package claude

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dvcrn/claude-warmup/internal/auth"
)

const (
	// Model is the fixed low-cost model used for warmup requests.
	Model = "claude-3-5-haiku-20241022"
	// MaxTokens caps the warmup reply budget.
	MaxTokens = 50
	// NoTextReply is returned when the reply contains no text block.
	NoTextReply = "(no text in reply)"

	// oauthBeta enables OAuth bearer authentication on the messages API.
	oauthBeta = "oauth-2025-04-20"
)

// Dispatcher sends a single warmup message using an access token.
type Dispatcher interface {
	Warmup(ctx context.Context, accessToken, message string) (string, error)
}

// Client dispatches warmup requests to the Anthropic messages API. The access
// token changes with every invocation, so authentication is attached
// per-request rather than at construction.
type Client struct {
	client anthropic.Client
}

// NewClient creates a dispatch client. Retries are disabled: the external
// schedule is the retry mechanism, and the whole point of the request is to be
// cheap. opts may override the base URL in tests.
func NewClient(opts ...option.RequestOption) *Client {
	base := []option.RequestOption{
		option.WithHeader("anthropic-beta", oauthBeta),
		option.WithMaxRetries(0),
	}
	return &Client{client: anthropic.NewClient(append(base, opts...)...)}
}

// Warmup sends one small fixed-budget user message and returns the first
// text-typed content block of the reply.
func (c *Client) Warmup(ctx context.Context, accessToken, message string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(Model),
		MaxTokens: MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(message)),
		},
	}, option.WithAuthToken(accessToken))
	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			return "", fmt.Errorf("claude API call failed with status %d: %s", apierr.StatusCode, auth.RedactTokens(apierr.Error()))
		}
		return "", fmt.Errorf("claude API call failed: %w", err)
	}

	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			return text.Text, nil
		}
	}
	return NoTextReply, nil
}
