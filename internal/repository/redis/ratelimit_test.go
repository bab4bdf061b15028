package redis

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt(t *testing.T) {
	assert.Equal(t, 12, toInt("12"))
	assert.Equal(t, 0, toInt(nil))
	assert.Equal(t, 0, toInt("x"))
}

func TestLimitCounter_WindowKey(t *testing.T) {
	c := &LimitCounter{prefix: RateLimitKeyPrefix}
	w := time.Unix(1700000000, 0)
	assert.Equal(t, "ratelimit:10.0.0.1:1700000000", c.windowKey("10.0.0.1", w))
}

// Runs against a live server when REDIS_ADDR is set.
func TestLimitCounter_Live(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client, err := NewClient(addr, os.Getenv("REDIS_PASSWORD"), 0)
	require.NoError(t, err)
	defer client.Close()

	c := NewLimitCounter(client)
	c.prefix = "test:" + uuid.NewString()
	c.Config(10, time.Minute)

	now := time.Now().UTC().Truncate(time.Minute)
	prev := now.Add(-time.Minute)

	require.NoError(t, c.IncrementBy("ip", prev, 4))
	require.NoError(t, c.Increment("ip", now))
	require.NoError(t, c.Increment("ip", now))

	cur, before, err := c.Get("ip", now, prev)
	require.NoError(t, err)
	assert.Equal(t, 2, cur)
	assert.Equal(t, 4, before)
}
