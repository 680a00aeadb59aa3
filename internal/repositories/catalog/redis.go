package catalog

import (
	"context"
	"encoding/json"
	"slices"

	redis "github.com/redis/go-redis/v9"

	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/errors"
	"github.com/foolchen/lifeRestart/internal/pkg/clock"
	redisclient "github.com/foolchen/lifeRestart/internal/redis"
)

const (
	// DefaultKey is the hash holding one field per talent id
	DefaultKey = "talent_catalog"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// Key defaults to DefaultKey
	Key string
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	key    string
}

// NewRedisRepository creates a catalog repository stored in a Redis hash
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		key:    key,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get reads every talent field of the catalog hash
func (r *redisRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("catalog %s not found", r.key)
		}
		return nil, errors.Wrapf(err, "failed to read catalog %s from Redis", r.key)
	}
	if len(fields) == 0 {
		return nil, errors.NotFoundf("catalog %s not found", r.key)
	}

	raw := make(entities.RawCatalog, len(fields))
	for id, value := range fields {
		var talent entities.RawTalent
		if err := json.Unmarshal([]byte(value), &talent); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to unmarshal talent").
				WithMeta("talent_id", id)
		}
		raw[id] = talent
	}

	return &GetOutput{
		Catalog: raw,
		Source:  "redis:" + r.key,
	}, nil
}

// Put replaces the catalog hash in a single transaction
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if len(input.Catalog) == 0 {
		return nil, errors.InvalidArgument("catalog is required")
	}

	ids := make([]string, 0, len(input.Catalog))
	for id := range input.Catalog {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	values := make([]any, 0, 2*len(ids))
	for _, id := range ids {
		data, err := json.Marshal(input.Catalog[id])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal talent %s", id)
		}
		values = append(values, id, string(data))
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key)
		pipe.HSet(ctx, r.key, values...)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store catalog %s in Redis", r.key)
	}

	return &PutOutput{
		Count:    len(ids),
		StoredAt: r.clock.Now(),
	}, nil
}
