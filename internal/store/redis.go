// internal/store/redis.go
package store

import (
    "context"
    "fmt"
    "log"
    "time"

    "github.com/redis/go-redis/v9"
)

// RedisStore is an alternate KV backend. Collections are stored as plain
// string values with no TTL, so the data survives restarts as long as the
// Redis instance is persistent.
type RedisStore struct {
    client *redis.Client
}

// NewRedisStoreFromURL connects from a redis:// URL and pings before use.
func NewRedisStoreFromURL(redisURL string) (*RedisStore, error) {
    opts, err := redis.ParseURL(redisURL)
    if err != nil {
        return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
    }

    client := redis.NewClient(opts)

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    if err := client.Ping(ctx).Err(); err != nil {
        return nil, fmt.Errorf("failed to connect to Redis: %w", err)
    }

    log.Printf("✅ Connected to Redis at %s", opts.Addr)
    return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(key string) ([]byte, bool, error) {
    val, err := s.client.Get(context.Background(), key).Bytes()
    if err != nil {
        if err == redis.Nil {
            return nil, false, nil
        }
        return nil, false, err
    }
    return val, true, nil
}

func (s *RedisStore) Set(key string, value []byte) error {
    return s.client.Set(context.Background(), key, value, 0).Err()
}

func (s *RedisStore) Close() error {
    return s.client.Close()
}

var _ KV = (*RedisStore)(nil)
