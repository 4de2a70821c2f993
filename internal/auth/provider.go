package auth

import "context"

// CredentialProvider resolves a usable access token for one invocation.
type CredentialProvider interface {
	// ResolveAccessToken returns an access token and whether the backing
	// refresh token was rotated while resolving it.
	ResolveAccessToken(ctx context.Context) (accessToken string, rotated bool, err error)
}
