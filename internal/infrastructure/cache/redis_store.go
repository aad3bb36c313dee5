package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/posdesk/backend/internal/infrastructure/config"
)

// RedisSummaryStore implements the dashboard summary cache on Redis.
// Suitable when several back-office instances share one dashboard.
type RedisSummaryStore struct {
	client *redis.Client
}

// NewRedisSummaryStore connects to Redis and verifies the connection
func NewRedisSummaryStore(cfg config.RedisConfig) (*RedisSummaryStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSummaryStore{client: client}, nil
}

// NewRedisSummaryStoreWithClient wraps an existing Redis client
func NewRedisSummaryStoreWithClient(client *redis.Client) *RedisSummaryStore {
	return &RedisSummaryStore{client: client}
}

// Get returns the cached value and whether the key was present
func (s *RedisSummaryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	return data, true, nil
}

// Set stores the value with a TTL
func (s *RedisSummaryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Close releases the Redis connection
func (s *RedisSummaryStore) Close() error {
	return s.client.Close()
}
