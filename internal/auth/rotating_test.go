package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/dvcrn/claude-warmup/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExchanger returns a canned result and records the tokens it was given.
type stubExchanger struct {
	result ExchangeResult
	err    error
	calls  []string
}

func (s *stubExchanger) Exchange(ctx context.Context, refreshToken string) (ExchangeResult, error) {
	s.calls = append(s.calls, refreshToken)
	if s.err != nil {
		return ExchangeResult{}, s.err
	}
	return s.result, nil
}

// failingStore simulates an unreachable store.
type failingStore struct {
	getErr error
	setErr error
}

func (f *failingStore) Get(ctx context.Context) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return "stored-7", nil
}

func (f *failingStore) Set(ctx context.Context, value string) error {
	return f.setErr
}

func TestRotatingProvider_StoreTakesPrecedenceOverSeed(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.Set(context.Background(), "stored-7"))

	ex := &stubExchanger{result: ExchangeResult{AccessToken: "a1", RefreshToken: "stored-7"}}
	p := NewRotatingProvider(st, "seed-1", ex, nil)

	_, _, err := p.ResolveAccessToken(context.Background())
	require.NoError(t, err)

	require.Len(t, ex.calls, 1)
	assert.Equal(t, "stored-7", ex.calls[0])
}

func TestRotatingProvider_SeedUsedWhenStoreEmpty(t *testing.T) {
	ex := &stubExchanger{result: ExchangeResult{AccessToken: "a1", RefreshToken: "seed-1"}}
	p := NewRotatingProvider(store.NewMemory(), "seed-1", ex, nil)

	token, rotated, err := p.ResolveAccessToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "a1", token)
	assert.False(t, rotated)
	require.Len(t, ex.calls, 1)
	assert.Equal(t, "seed-1", ex.calls[0])
}

func TestRotatingProvider_ErrorWhenNoTokenAvailable(t *testing.T) {
	ex := &stubExchanger{}
	p := NewRotatingProvider(store.NewMemory(), "", ex, nil)

	_, _, err := p.ResolveAccessToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLAUDE_REFRESH_TOKEN")
	assert.Empty(t, ex.calls, "exchange must not run without a refresh token")
}

func TestRotatingProvider_StoreReadFailureDoesNotFallBackToSeed(t *testing.T) {
	ex := &stubExchanger{}
	st := &failingStore{getErr: fmt.Errorf("store unreachable")}
	p := NewRotatingProvider(st, "seed-1", ex, nil)

	_, _, err := p.ResolveAccessToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store unreachable")
	assert.Empty(t, ex.calls, "a store failure must not be conflated with an empty store")
}

func TestRotatingProvider_PersistsRotatedToken(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.Set(context.Background(), "stored-7"))

	ex := &stubExchanger{result: ExchangeResult{AccessToken: "a2", RefreshToken: "rotated-9"}}
	p := NewRotatingProvider(st, "", ex, nil)

	token, rotated, err := p.ResolveAccessToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "a2", token)
	assert.True(t, rotated)

	stored, err := st.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rotated-9", stored)

	// The next run resolves the rotated token, not the stale one.
	_, _, err = p.ResolveAccessToken(context.Background())
	require.NoError(t, err)
	require.Len(t, ex.calls, 2)
	assert.Equal(t, "rotated-9", ex.calls[1])
}

func TestRotatingProvider_NoPersistWhenTokenUnchanged(t *testing.T) {
	st := store.NewMemory()
	ex := &stubExchanger{result: ExchangeResult{AccessToken: "a1", RefreshToken: "seed-1"}}
	p := NewRotatingProvider(st, "seed-1", ex, nil)

	_, rotated, err := p.ResolveAccessToken(context.Background())
	require.NoError(t, err)
	assert.False(t, rotated)

	stored, err := st.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored, "unchanged token must not be written back")
}

func TestRotatingProvider_NoPersistWhenResponseOmitsRefreshToken(t *testing.T) {
	st := store.NewMemory()
	ex := &stubExchanger{result: ExchangeResult{AccessToken: "a1"}}
	p := NewRotatingProvider(st, "seed-1", ex, nil)

	token, rotated, err := p.ResolveAccessToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "a1", token)
	assert.False(t, rotated, "an omitted refresh token means no rotation, not invalidation")

	stored, err := st.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRotatingProvider_PersistFailureFailsResolution(t *testing.T) {
	st := &failingStore{setErr: fmt.Errorf("write refused")}
	ex := &stubExchanger{result: ExchangeResult{AccessToken: "a2", RefreshToken: "rotated-9"}}
	p := NewRotatingProvider(st, "", ex, nil)

	_, _, err := p.ResolveAccessToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist rotated refresh token")
}

func TestStaticProvider(t *testing.T) {
	token, rotated, err := NewStaticProvider("long-lived").ResolveAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "long-lived", token)
	assert.False(t, rotated)

	_, _, err = NewStaticProvider("").ResolveAccessToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLAUDE_ACCESS_TOKEN")
}
