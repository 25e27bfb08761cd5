package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const tokenKeyPrefix = "session:token:"

// RedisStore persists the bearer token in Redis so a session survives a
// gateway restart, mirroring how the web client keeps its token in
// persistent browser storage.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore builds a store scoped to one session key (typically the
// authenticated user ID). A zero ttl means the token never expires.
func NewRedisStore(client *redis.Client, sessionKey string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, key: tokenKeyPrefix + sessionKey, ttl: ttl}
}

func (s *RedisStore) Token(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisStore) SetToken(ctx context.Context, token string) error {
	return s.client.Set(ctx, s.key, token, s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
