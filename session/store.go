// Package session owns bearer-token persistence for the API client. The
// store plays the role browser storage plays for a web client: the token
// survives a process restart, is written on login and removed on logout,
// and exactly one token is active per session key (last writer wins).
package session

import (
	"context"
	"errors"
)

// ErrNoToken is returned when the store holds no token for the session.
var ErrNoToken = errors.New("session: no token stored")

// ErrReadOnly is returned by stores that do not accept writes.
var ErrReadOnly = errors.New("session: store is read-only")

// Store persists a single opaque bearer token.
type Store interface {
	// Token returns the stored token, or ErrNoToken if none is set.
	Token(ctx context.Context) (string, error)
	// SetToken stores the token, replacing any previous value.
	SetToken(ctx context.Context, token string) error
	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
