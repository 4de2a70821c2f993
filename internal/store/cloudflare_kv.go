//go:build js && wasm

package store

import (
	"context"
	"fmt"

	"github.com/syumai/workers/cloudflare/kv"
)

// KVBindingName is the KV namespace binding configured in wrangler.toml.
const KVBindingName = "warmup_kv"

// CloudflareKV persists the refresh token in a Cloudflare Workers KV
// namespace.
type CloudflareKV struct {
	ns *kv.Namespace
}

// NewCloudflareKV opens the KV namespace binding.
func NewCloudflareKV() (*CloudflareKV, error) {
	ns, err := kv.NewNamespace(KVBindingName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize KV namespace: %w", err)
	}
	return &CloudflareKV{ns: ns}, nil
}

// Get returns the persisted refresh token. KV reports a missing key as an
// empty string, which matches the Store contract directly.
func (c *CloudflareKV) Get(ctx context.Context) (string, error) {
	v, err := c.ns.GetString(RefreshTokenKey, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get refresh token from KV: %w", err)
	}
	return v, nil
}

func (c *CloudflareKV) Set(ctx context.Context, value string) error {
	if err := c.ns.PutString(RefreshTokenKey, value, nil); err != nil {
		return fmt.Errorf("failed to store refresh token in KV: %w", err)
	}
	return nil
}
