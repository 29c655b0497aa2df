package ports

import "context"

// SessionStore maps opaque client-held tokens to user identities.
// A user may hold any number of concurrent sessions.
type SessionStore interface {
	// Establish mints a new unguessable token bound to userID.
	Establish(ctx context.Context, userID string) (token string, err error)

	// Resolve returns the user id a token is bound to, or "" when the
	// token is unknown, expired, or malformed. Anonymous is not an error.
	Resolve(ctx context.Context, token string) (userID string, err error)

	// Revoke invalidates the token. Revoking an unknown or already
	// revoked token is a no-op.
	Revoke(ctx context.Context, token string) error
}
