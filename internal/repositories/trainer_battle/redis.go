package trainerbattle

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/wildgrove/encounter-api/internal/errors"
	"github.com/wildgrove/encounter-api/internal/pkg/clock"
	redisclient "github.com/wildgrove/encounter-api/internal/redis"
)

const (
	// Key patterns:
	//   trainer_battle:active:{player_id}
	//   trainer_battle:settled:{player_id}:{trainer_id}
	//   trainer_prize:{player_id}:{trainer_id}
	//   trainer_rotation:{player_id}
	activeKeyPrefix   = "trainer_battle:active:"
	settledKeyPrefix  = "trainer_battle:settled:"
	prizeKeyPrefix    = "trainer_prize:"
	rotationKeyPrefix = "trainer_rotation:"

	defaultTTL           = time.Hour
	defaultSettlementTTL = 10 * time.Minute

	errBattleNil      = "battle cannot be nil"
	errPlayerIDEmpty  = "player ID cannot be empty"
	errTrainerIDEmpty = "trainer ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for trainer battles
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new IN_PROGRESS battle with SETNX
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Battle == nil {
		return nil, errors.InvalidArgument(errBattleNil)
	}
	if input.Battle.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Battle.TrainerID == "" {
		return nil, errors.InvalidArgument(errTrainerIDEmpty)
	}
	if len(input.Battle.Team) == 0 {
		return nil, errors.InvalidArgument("battle team cannot be empty")
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	battle := *input.Battle
	battle.State = StateInProgress
	battle.CurrentIndex = 0
	battle.CreatedAt = now
	battle.ExpiresAt = now.Add(ttl)

	battleJSON, err := json.Marshal(&battle)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle")
	}

	key := activeKey(battle.PlayerID)
	ok, err := r.client.SetNX(ctx, key, battleJSON, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store battle in Redis")
	}
	if !ok {
		return nil, errors.AlreadyExistsf("player %s already has an active battle", battle.PlayerID)
	}

	return &CreateOutput{Battle: &battle}, nil
}

// GetActive retrieves the player's active battle
func (r *redisRepository) GetActive(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := activeKey(input.PlayerID)
	battleJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no active battle")
		}
		return nil, errors.Wrapf(err, "failed to get battle from Redis")
	}

	var battle Battle
	if err := json.Unmarshal([]byte(battleJSON), &battle); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal battle")
	}

	if r.clock.Now().After(battle.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("battle has expired")
	}

	return &GetOutput{Battle: &battle}, nil
}

// Update replaces the player's active battle, keeping its remaining TTL
func (r *redisRepository) Update(ctx context.Context, battle *Battle) error {
	if battle == nil {
		return errors.InvalidArgument(errBattleNil)
	}
	if battle.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}

	now := r.clock.Now()
	if now.After(battle.ExpiresAt) {
		return errors.InvalidArgument("battle has already expired")
	}
	remainingTTL := battle.ExpiresAt.Sub(now)

	battleJSON, err := json.Marshal(battle)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal battle")
	}

	key := activeKey(battle.PlayerID)
	if err := r.client.Set(ctx, key, battleJSON, remainingTTL).Err(); err != nil {
		return errors.Wrapf(err, "failed to update battle in Redis")
	}

	return nil
}

// ClaimPrize marks the player/trainer prize as claimed with SETNX. The key
// has no TTL; a prize is claimable once per pair, ever.
func (r *redisRepository) ClaimPrize(ctx context.Context, input ClaimPrizeInput) (*ClaimPrizeOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.TrainerID == "" {
		return nil, errors.InvalidArgument(errTrainerIDEmpty)
	}

	key := prizeKey(input.PlayerID, input.TrainerID)
	won, err := r.client.SetNX(ctx, key, r.clock.Now().Format(time.RFC3339), 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to claim prize")
	}

	return &ClaimPrizeOutput{Won: won}, nil
}

// SaveSettlement deletes the active battle and writes the settlement record
// in one transaction
func (r *redisRepository) SaveSettlement(ctx context.Context, input SaveSettlementInput) (*SaveSettlementOutput, error) {
	if input.Settlement == nil {
		return nil, errors.InvalidArgument("settlement cannot be nil")
	}
	if input.Settlement.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Settlement.TrainerID == "" {
		return nil, errors.InvalidArgument(errTrainerIDEmpty)
	}

	settlement := *input.Settlement
	settlement.SettledAt = r.clock.Now()

	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultSettlementTTL
	}

	settlementJSON, err := json.Marshal(&settlement)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal settlement")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, activeKey(settlement.PlayerID))
	pipe.Set(ctx, settledKey(settlement.PlayerID, settlement.TrainerID), settlementJSON, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save settlement")
	}

	return &SaveSettlementOutput{Settlement: &settlement}, nil
}

// GetSettlement retrieves a settlement record
func (r *redisRepository) GetSettlement(ctx context.Context, input GetSettlementInput) (*GetSettlementOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.TrainerID == "" {
		return nil, errors.InvalidArgument(errTrainerIDEmpty)
	}

	settlementJSON, err := r.client.Get(ctx, settledKey(input.PlayerID, input.TrainerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no settlement record")
		}
		return nil, errors.Wrapf(err, "failed to get settlement from Redis")
	}

	var settlement Settlement
	if err := json.Unmarshal([]byte(settlementJSON), &settlement); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal settlement")
	}

	return &GetSettlementOutput{Settlement: &settlement}, nil
}

// AdvanceRotation increments the player's roster position
func (r *redisRepository) AdvanceRotation(ctx context.Context, input AdvanceRotationInput) (*AdvanceRotationOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	position, err := r.client.Incr(ctx, rotationKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to advance rotation")
	}

	return &AdvanceRotationOutput{Position: position}, nil
}

// GetRotation reads the player's roster position, defaulting to 0
func (r *redisRepository) GetRotation(ctx context.Context, input GetRotationInput) (*GetRotationOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	position, err := r.client.Get(ctx, rotationKey(input.PlayerID)).Int64()
	if err != nil {
		if err == redis.Nil {
			return &GetRotationOutput{Position: 0}, nil
		}
		return nil, errors.Wrapf(err, "failed to get rotation from Redis")
	}

	return &GetRotationOutput{Position: position}, nil
}

func activeKey(playerID string) string {
	return activeKeyPrefix + playerID
}

func settledKey(playerID, trainerID string) string {
	return fmt.Sprintf("%s%s:%s", settledKeyPrefix, playerID, trainerID)
}

func prizeKey(playerID, trainerID string) string {
	return fmt.Sprintf("%s%s:%s", prizeKeyPrefix, playerID, trainerID)
}

func rotationKey(playerID string) string {
	return rotationKeyPrefix + playerID
}
