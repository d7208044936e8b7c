package check

import (
	"context"

	"github.com/redis/go-redis/v9"

	"go-health/internal/domain/model"
)

// RedisCheck pings a Redis server and reports pool statistics.
type RedisCheck struct {
	client *redis.Client
}

// NewRedisCheck creates a check for the given client.
func NewRedisCheck(client *redis.Client) *RedisCheck {
	return &RedisCheck{client: client}
}

func (c *RedisCheck) Check(ctx context.Context) model.CheckResult {
	addr := c.client.Options().Addr

	if err := c.client.Ping(ctx).Err(); err != nil {
		return model.DownResult(err, map[string]any{"addr": addr})
	}

	stats := c.client.PoolStats()
	return model.UpResult(map[string]any{
		"addr":        addr,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
	})
}
