package auth

import (
	"context"
	"errors"
	"time"

	autherrors "ems-console/internal/auth/errors"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionStore is the persistent token storage behind the session gate.
// Presence of a token under a session id is the authorization signal.
type SessionStore interface {
	Save(ctx context.Context, sessionID, token string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) SessionStore {
	return &redisSessionStore{rdb: rdb}
}

func (s *redisSessionStore) Save(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKeyPrefix+sessionID, token, ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	token, err := s.rdb.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", autherrors.ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
