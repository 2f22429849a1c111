package mapprogress

import (
	"context"
	"fmt"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/wildgrove/encounter-api/internal/errors"
	redisclient "github.com/wildgrove/encounter-api/internal/redis"
)

const (
	// Key pattern: map_progress:{player_id}:{map_id}
	keyPrefix = "map_progress:"

	fieldTotalSearches = "total_searches"
	fieldMapExp        = "map_exp"

	errPlayerIDEmpty = "player ID cannot be empty"
	errMapIDEmpty    = "map ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for map progress
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// RecordSearch increments the counters with HINCRBY so concurrent searches
// each get a distinct running total
func (r *redisRepository) RecordSearch(ctx context.Context, input RecordSearchInput) (*RecordSearchOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.MapID == "" {
		return nil, errors.InvalidArgument(errMapIDEmpty)
	}
	if input.ExpGained < 0 {
		return nil, errors.InvalidArgument("exp gained cannot be negative")
	}

	key := progressKey(input.PlayerID, input.MapID)

	pipe := r.client.TxPipeline()
	searchesCmd := pipe.HIncrBy(ctx, key, fieldTotalSearches, 1)
	expCmd := pipe.HIncrBy(ctx, key, fieldMapExp, input.ExpGained)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to record search")
	}

	return &RecordSearchOutput{
		Progress: &Progress{
			PlayerID:      input.PlayerID,
			MapID:         input.MapID,
			TotalSearches: searchesCmd.Val(),
			MapExp:        expCmd.Val(),
		},
	}, nil
}

// Get reads the counters, treating a missing hash as zero progress
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.MapID == "" {
		return nil, errors.InvalidArgument(errMapIDEmpty)
	}

	key := progressKey(input.PlayerID, input.MapID)
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to get progress from Redis")
	}

	progress := &Progress{
		PlayerID: input.PlayerID,
		MapID:    input.MapID,
	}
	if v, ok := fields[fieldTotalSearches]; ok {
		progress.TotalSearches, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "corrupt %s field", fieldTotalSearches)
		}
	}
	if v, ok := fields[fieldMapExp]; ok {
		progress.MapExp, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "corrupt %s field", fieldMapExp)
		}
	}

	return &GetOutput{Progress: progress}, nil
}

// AddExp adds map experience with HINCRBY
func (r *redisRepository) AddExp(ctx context.Context, input AddExpInput) (*AddExpOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.MapID == "" {
		return nil, errors.InvalidArgument(errMapIDEmpty)
	}
	if input.Exp < 0 {
		return nil, errors.InvalidArgument("exp cannot be negative")
	}

	key := progressKey(input.PlayerID, input.MapID)
	exp, err := r.client.HIncrBy(ctx, key, fieldMapExp, input.Exp).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add map exp")
	}

	searches, err := r.client.HGet(ctx, key, fieldTotalSearches).Int64()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to read search counter")
	}

	return &AddExpOutput{
		Progress: &Progress{
			PlayerID:      input.PlayerID,
			MapID:         input.MapID,
			TotalSearches: searches,
			MapExp:        exp,
		},
	}, nil
}

func progressKey(playerID, mapID string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, playerID, mapID)
}
