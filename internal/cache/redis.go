package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/inkwell/inkwell/pkg/config"
	"github.com/inkwell/inkwell/pkg/logging"
)

// RedisStore is the production Store backed by Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store, or (nil, nil) when Redis is
// disabled in the configuration.
func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	if !cfg.Enabled {
		logging.GetLogger().Info("Redis cache disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.GetLogger().Info("Redis connection established")

	return &RedisStore{client: client}, nil
}

// Get retrieves a cached page
func (s *RedisStore) Get(ctx context.Context, key string) (*Entry, bool, error) {
	if s == nil || s.client == nil {
		return nil, false, ErrCacheDisabled
	}
	b, err := s.client.Get(ctx, s.namespaceKey(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var entry Entry
	if err := json.Unmarshal(b, &entry); err != nil {
		return nil, false, err
	}
	return &entry, true, nil
}

// Set stores a cached page with TTL
func (s *RedisStore) Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) error {
	if s == nil || s.client == nil {
		return ErrCacheDisabled
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.namespaceKey(key), b, ttl).Err()
}

// Delete removes a cached page
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if s == nil || s.client == nil {
		return ErrCacheDisabled
	}
	return s.client.Del(ctx, s.namespaceKey(key)).Err()
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Health checks Redis health
func (s *RedisStore) Health(ctx context.Context) error {
	if s == nil || s.client == nil {
		return ErrCacheDisabled
	}
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) namespaceKey(key string) string {
	return "inkwell:page:" + key
}
