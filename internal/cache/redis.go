package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Client wraps the Redis connection used for rate limiting. A nil *Client is
// valid and means "no Redis": callers degrade to pass-through.
type Client struct {
	rdb *redis.Client
}

func NewClient(addr string, logger *zap.Logger) *Client {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, rate limiting disabled", zap.Error(err))
		return nil
	}

	logger.Info("redis connected", zap.String("addr", addr))
	return &Client{rdb: rdb}
}

// Allow implements a fixed-window counter: the first hit on a key starts the
// window, every hit increments, and the request passes while the count stays
// within the limit.
func (c *Client) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}
