package redis

import (
	"context"
	"fmt"
	"time"

	"getcooked/internal/ports/output"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var _ output.StateLedger = (*RedisStateLedger)(nil)

const defaultPrefix = "getcooked:oauth_state:"

// RedisStateLedger struct - Output adapter keeping redeemed nonces in Redis,
// shared by every instance behind a load balancer
type RedisStateLedger struct {
	client *redis.Client
	prefix string
}

// NewRedisStateLedger func - Connects to redisURL and verifies the connection
func NewRedisStateLedger(ctx context.Context, redisURL, prefix string) (*RedisStateLedger, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	if prefix == "" {
		prefix = defaultPrefix
	}

	logrus.Infof("Redis state ledger connected to %s", opts.Addr)

	return &RedisStateLedger{client: client, prefix: prefix}, nil
}

// Consume - SET NX with expiry, so only the first caller within ttl wins
func (r *RedisStateLedger) Consume(ctx context.Context, state string, ttl time.Duration) (bool, error) {
	fresh, err := r.client.SetNX(ctx, r.key(state), time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx failed: %w", err)
	}
	return fresh, nil
}

// Close - Closes the underlying client
func (r *RedisStateLedger) Close() error {
	return r.client.Close()
}

func (r *RedisStateLedger) key(state string) string {
	return r.prefix + state
}
