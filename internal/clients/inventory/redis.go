package inventory

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/wildgrove/encounter-api/internal/errors"
	redisclient "github.com/wildgrove/encounter-api/internal/redis"
)

// Key pattern: inventory:{player_id}, a hash of item ID to quantity
const keyPrefix = "inventory:"

// Config holds the configuration for the Redis-backed inventory client
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

type redisInventory struct {
	client redisclient.Client
}

// NewRedisClient creates an inventory client backed by Redis
func NewRedisClient(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisInventory{client: cfg.Client}, nil
}

// Ensure redisInventory implements Client
var _ Client = (*redisInventory)(nil)

// GrantItem adds items with HINCRBY
func (c *redisInventory) GrantItem(ctx context.Context, input *GrantItemInput) (*GrantItemOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID cannot be empty")
	}
	if input.Quantity < 1 {
		return nil, errors.InvalidArgument("quantity must be at least 1")
	}

	quantity, err := c.client.HIncrBy(ctx, inventoryKey(input.PlayerID), input.ItemID, input.Quantity).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to grant item")
	}

	return &GrantItemOutput{Quantity: quantity}, nil
}

// ConsumeItem decrements with HINCRBY and compensates when the counter goes
// negative, so concurrent consumers cannot spend more than the player holds
func (c *redisInventory) ConsumeItem(ctx context.Context, input *ConsumeItemInput) (*ConsumeItemOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID cannot be empty")
	}

	key := inventoryKey(input.PlayerID)
	remaining, err := c.client.HIncrBy(ctx, key, input.ItemID, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to consume item")
	}

	if remaining < 0 {
		if _, err := c.client.HIncrBy(ctx, key, input.ItemID, 1).Result(); err != nil {
			return nil, errors.Wrapf(err, "failed to restore item count")
		}
		return nil, errors.FailedPreconditionf("player %s has no %s", input.PlayerID, input.ItemID)
	}

	return &ConsumeItemOutput{Remaining: remaining}, nil
}

// GetQuantity reads one item count, treating a missing field as zero
func (c *redisInventory) GetQuantity(ctx context.Context, input *GetQuantityInput) (*GetQuantityOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID cannot be empty")
	}

	quantity, err := c.client.HGet(ctx, inventoryKey(input.PlayerID), input.ItemID).Int64()
	if err != nil {
		if err == redis.Nil {
			return &GetQuantityOutput{Quantity: 0}, nil
		}
		return nil, errors.Wrapf(err, "failed to read item quantity")
	}

	return &GetQuantityOutput{Quantity: quantity}, nil
}

func inventoryKey(playerID string) string {
	return keyPrefix + playerID
}
