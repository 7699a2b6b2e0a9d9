// Package cache provides the redis-backed read cache used in front of the
// wallet store.
package cache

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds the connection settings for the cache backend.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisClient builds a redis client from the given configuration.
func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
