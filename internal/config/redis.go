package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil without error when REDIS_URL is unset; the
// comment tree is then rebuilt on every listing.
func NewRedisClient(cfg *Config) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
