package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
	"github.com/redis/go-redis/v9"
)

const (
	RateLimitKeyPrefix = "ratelimit"
	opTimeout          = 500 * time.Millisecond
)

var _ httprate.LimitCounter = (*LimitCounter)(nil)

// LimitCounter keeps httprate's sliding window counters in Redis so that
// every API instance shares one budget per client.
type LimitCounter struct {
	client       *redis.Client
	prefix       string
	windowLength time.Duration
}

func NewLimitCounter(client *redis.Client) *LimitCounter {
	return &LimitCounter{client: client, prefix: RateLimitKeyPrefix}
}

func (c *LimitCounter) Config(requestLimit int, windowLength time.Duration) {
	c.windowLength = windowLength
}

func (c *LimitCounter) Increment(key string, currentWindow time.Time) error {
	return c.IncrementBy(key, currentWindow, 1)
}

func (c *LimitCounter) IncrementBy(key string, currentWindow time.Time, amount int) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	k := c.windowKey(key, currentWindow)
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.IncrBy(ctx, k, int64(amount))
		// the previous window is still read while the current one is live
		p.Expire(ctx, k, 3*c.windowLength)
		return nil
	})
	if err != nil {
		return fmt.Errorf("ratelimit incr: %w", err)
	}
	return nil
}

func (c *LimitCounter) Get(key string, currentWindow, previousWindow time.Time) (int, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	vals, err := c.client.MGet(ctx, c.windowKey(key, currentWindow), c.windowKey(key, previousWindow)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, 0, fmt.Errorf("ratelimit get: %w", err)
	}
	if len(vals) != 2 {
		return 0, 0, nil
	}
	return toInt(vals[0]), toInt(vals[1]), nil
}

func (c *LimitCounter) windowKey(key string, window time.Time) string {
	return fmt.Sprintf("%s:%s:%d", c.prefix, key, window.Unix())
}

func toInt(v any) int {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
