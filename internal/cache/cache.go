package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a Redis-backed key/value store that fails open: when Redis is
// unreachable reads behave as misses and writes are dropped, with the error
// logged at debug level. A nil *Client behaves as an always-empty store.
type Client struct {
	rdb    *redis.Client
	logger *slog.Logger
}

// New connects to Redis at addr. An empty addr yields nil, which disables the store.
func New(addr, password string, db int, logger *slog.Logger) *Client {
	if addr == "" {
		return nil
	}
	return NewFromRedis(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), logger)
}

// NewFromRedis wraps an existing redis client.
func NewFromRedis(rdb *redis.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{rdb: rdb, logger: logger}
}

// Get returns the stored value, or nil when the key is missing or Redis fails.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.rdb == nil {
		return nil, nil
	}
	val, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, nil
	case err != nil:
		c.logger.DebugContext(ctx, "cache read failed, treating as miss",
			slog.String("key", key), slog.Any("error", err))
		return nil, nil
	}
	return val, nil
}

// Set stores value under key for ttl. Redis failures are logged and dropped.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.DebugContext(ctx, "cache write dropped",
			slog.String("key", key), slog.Duration("ttl", ttl), slog.Any("error", err))
	}
	return nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
