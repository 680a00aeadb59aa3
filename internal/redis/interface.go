package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Client is the part of go-redis the talent catalog store uses. Both
// *redis.Client and redismock clients satisfy it.
type Client interface {
	Ping(ctx context.Context) *redis.StatusCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
	Close() error
}

var _ Client = (*redis.Client)(nil)
