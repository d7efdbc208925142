package helpers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client. An empty addr disables Redis
// and returns nil; callers treat a nil client as "no rate limiting".
func NewRedisClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// PingRedis checks connectivity with a short timeout.
func PingRedis(ctx context.Context, rdb *redis.Client) error {
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return rdb.Ping(c).Err()
}
