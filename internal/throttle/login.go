package throttle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// Guard counts failed logins per identifier.
type Guard interface {
	Locked(ctx context.Context, key string) (bool, error)
	Fail(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

func Key(kind, email string) string {
	return fmt.Sprintf("login:fail:%s:%s", kind, strings.ToLower(strings.TrimSpace(email)))
}

// RedisGuard locks an identifier for window once max failures are counted.
type RedisGuard struct {
	client *redis.Client
	max    int64
	window time.Duration
}

func NewRedisGuard(client *redis.Client, max int, window time.Duration) *RedisGuard {
	return &RedisGuard{client: client, max: int64(max), window: window}
}

func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (g *RedisGuard) Locked(ctx context.Context, key string) (bool, error) {
	n, err := g.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n >= g.max, nil
}

// Fail counts one failure. The window starts with the first failure and is
// set in the same MULTI/EXEC as the increment, so a counter never lives
// without a TTL.
func (g *RedisGuard) Fail(ctx context.Context, key string) error {
	_, err := g.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, key, 0, g.window)
		pipe.Incr(ctx, key)
		return nil
	})
	return err
}

func (g *RedisGuard) Reset(ctx context.Context, key string) error {
	return g.client.Del(ctx, key).Err()
}

// Noop never locks anyone out.
type Noop struct{}

func (Noop) Locked(context.Context, string) (bool, error) { return false, nil }
func (Noop) Fail(context.Context, string) error           { return nil }
func (Noop) Reset(context.Context, string) error          { return nil }

var (
	_ Guard = (*RedisGuard)(nil)
	_ Guard = Noop{}
)
