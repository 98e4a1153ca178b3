package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/nutrivitta/storefront/cmd/config"
	"github.com/redis/go-redis/v9"
)

// The client is process-global: carts, checkout sessions and auth sessions
// all go through the same connection pool.
var client *redis.Client

func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	c := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping %s:%d: %w", cfg.Redis.Host, cfg.Redis.Port, err)
	}

	client = c
	return nil
}

// Set swaps the client in, used by tests running against miniredis.
func Set(c *redis.Client) {
	client = c
}

func Get() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
