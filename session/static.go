package session

import "context"

// StaticStore wraps a fixed bearer token. The gateway handlers use it to
// bind an API client to the token a request arrived with; SetToken and
// Clear are rejected because the caller owns the token, not the gateway.
type StaticStore struct {
	token string
}

func Static(token string) *StaticStore {
	return &StaticStore{token: token}
}

func (s *StaticStore) Token(ctx context.Context) (string, error) {
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *StaticStore) SetToken(ctx context.Context, token string) error {
	return ErrReadOnly
}

func (s *StaticStore) Clear(ctx context.Context) error {
	return ErrReadOnly
}
