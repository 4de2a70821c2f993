package store

import "context"

// RefreshTokenKey is the single key under which the current refresh token is
// persisted.
const RefreshTokenKey = "claude_refresh_token"

// Store is opaque string storage for the refresh token. Get returns an empty
// string with a nil error when nothing has been persisted yet; a non-nil error
// means the store itself could not be reached. Callers must not conflate the
// two.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, value string) error
}

// Locker is an optional capability a Store may implement to guard rotation
// against overlapping invocations. Lock returns ok=false when another holder
// currently owns the lease.
type Locker interface {
	Lock(ctx context.Context) (unlock func(), ok bool, err error)
}
