// Package cache provides the Redis client used as a read-through cache for
// the movie catalog. Callers must tolerate a nil client and degrade to
// hitting the database directly.
package cache

import (
	"context"
	"time"

	"movie-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis using the loaded config. Returns nil when
// no address is configured or the server cannot be reached; caching is then
// disabled.
func NewRedisClient(config utils.RedisConfig) *redis.Client {
	if config.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return client
}
