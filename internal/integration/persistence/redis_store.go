package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/webapp/internal/application/adapter"
)

// redisStore implements adapter.KeyValueStore on Redis strings.
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a key-value store on Redis. Keys are namespaced with prefix.
func NewRedisStore(client *redis.Client, prefix string) adapter.KeyValueStore {
	return &redisStore{
		client: client,
		prefix: prefix,
	}
}

// Get returns the value stored under key.
func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Set stores value under key without expiry.
func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// Ping checks the Redis connection.
func (s *redisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
