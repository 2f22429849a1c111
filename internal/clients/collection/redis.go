package collection

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/wildgrove/encounter-api/internal/content"
	"github.com/wildgrove/encounter-api/internal/engine"
	"github.com/wildgrove/encounter-api/internal/entities/game"
	"github.com/wildgrove/encounter-api/internal/errors"
	"github.com/wildgrove/encounter-api/internal/pkg/clock"
	"github.com/wildgrove/encounter-api/internal/pkg/idgen"
	redisclient "github.com/wildgrove/encounter-api/internal/redis"
)

const (
	// Key patterns:
	//   collection:creature:{creature_id}
	//   collection:list:{player_id}       (list of creature IDs, insert order)
	//   collection:active:{player_id}     (active battler creature ID)
	//   wallet:{player_id}                (hash: coins, trainer_exp)
	creatureKeyPrefix = "collection:creature:"
	listKeyPrefix     = "collection:list:"
	activeKeyPrefix   = "collection:active:"
	walletKeyPrefix   = "wallet:"

	fieldCoins      = "coins"
	fieldTrainerExp = "trainer_exp"
)

// Config holds the configuration for the Redis-backed collection client
type Config struct {
	Client      redisclient.Client
	Content     content.Store
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Content == nil {
		return errors.InvalidArgument("content store is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.IDGenerator == nil {
		return errors.InvalidArgument("ID generator is required")
	}
	return nil
}

type redisCollection struct {
	client  redisclient.Client
	content content.Store
	clock   clock.Clock
	idGen   idgen.Generator
}

// NewRedisClient creates a collection client backed by Redis. Deployments
// with a separate collection service swap this for an HTTP client behind the
// same interface.
func NewRedisClient(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisCollection{
		client:  cfg.Client,
		content: cfg.Content,
		clock:   cfg.Clock,
		idGen:   cfg.IDGenerator,
	}, nil
}

// Ensure redisCollection implements Client
var _ Client = (*redisCollection)(nil)

// CreateCreature persists a new creature with stats scaled from its species
// base stats to the granted level
func (c *redisCollection) CreateCreature(ctx context.Context, input *CreateCreatureInput) (*CreateCreatureOutput, error) {
	if input == nil || input.Grant == nil {
		return nil, errors.InvalidArgument("grant cannot be nil")
	}
	grant := input.Grant
	if grant.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}
	if grant.SpeciesID == "" {
		return nil, errors.InvalidArgument("species ID cannot be empty")
	}
	if grant.Level < 1 {
		return nil, errors.InvalidArgument("level must be at least 1")
	}

	species, err := c.content.GetSpecies(ctx, grant.SpeciesID)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown species %s", grant.SpeciesID)
	}

	now := c.clock.Now().Unix()
	maxHP := engine.HPForLevel(species.BaseHP, grant.Level)
	maxMP := engine.MPForLevel(grant.Level)
	creature := &game.PlayerCreature{
		ID:        c.idGen.Generate(),
		PlayerID:  grant.PlayerID,
		SpeciesID: grant.SpeciesID,
		Name:      species.Name,
		Level:     grant.Level,
		Exp:       engine.TotalExpForLevel(grant.Level),
		CurrentHP: maxHP,
		MaxHP:     maxHP,
		Attack:    engine.StatForLevel(species.BaseAttack, grant.Level),
		Defense:   engine.StatForLevel(species.BaseDefense, grant.Level),
		Speed:     engine.StatForLevel(species.BaseSpeed, grant.Level),
		Happiness: 0,
		MP:        maxMP,
		MaxMP:     maxMP,
		CreatedAt: now,
		UpdatedAt: now,
	}

	creatureJSON, err := json.Marshal(creature)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal creature")
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, creatureKey(creature.ID), creatureJSON, 0)
	pipe.RPush(ctx, listKey(grant.PlayerID), creature.ID)
	// The first creature a player obtains becomes their active battler
	pipe.SetNX(ctx, activeKey(grant.PlayerID), creature.ID, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store creature")
	}

	return &CreateCreatureOutput{Creature: creature}, nil
}

// GetActiveCreature fetches the player's active battler
func (c *redisCollection) GetActiveCreature(ctx context.Context, input *GetActiveCreatureInput) (*GetActiveCreatureOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	creatureID, err := c.client.Get(ctx, activeKey(input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.FailedPrecondition("player has no active creature")
		}
		return nil, errors.Wrapf(err, "failed to get active creature ID")
	}

	creature, err := c.getCreature(ctx, creatureID)
	if err != nil {
		return nil, err
	}

	return &GetActiveCreatureOutput{Creature: creature}, nil
}

// GrantCreatureExp adds experience and happiness, re-deriving level and
// stats from the new total
func (c *redisCollection) GrantCreatureExp(ctx context.Context, input *GrantCreatureExpInput) (*GrantCreatureExpOutput, error) {
	if input == nil || input.CreatureID == "" {
		return nil, errors.InvalidArgument("creature ID cannot be empty")
	}
	if input.Exp < 0 {
		return nil, errors.InvalidArgument("exp cannot be negative")
	}

	creature, err := c.getCreature(ctx, input.CreatureID)
	if err != nil {
		return nil, err
	}

	species, err := c.content.GetSpecies(ctx, creature.SpeciesID)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown species %s", creature.SpeciesID)
	}

	oldLevel := creature.Level
	creature.Exp += input.Exp
	creature.Happiness += input.Happiness
	creature.Level = engine.LevelFromExp(creature.Exp)

	if creature.Level > oldLevel {
		// Level-ups restore the creature to its new full stats
		creature.MaxHP = engine.HPForLevel(species.BaseHP, creature.Level)
		creature.CurrentHP = creature.MaxHP
		creature.MaxMP = engine.MPForLevel(creature.Level)
		creature.MP = creature.MaxMP
		creature.Attack = engine.StatForLevel(species.BaseAttack, creature.Level)
		creature.Defense = engine.StatForLevel(species.BaseDefense, creature.Level)
		creature.Speed = engine.StatForLevel(species.BaseSpeed, creature.Level)
	}
	creature.UpdatedAt = c.clock.Now().Unix()

	if err := c.putCreature(ctx, creature); err != nil {
		return nil, err
	}

	return &GrantCreatureExpOutput{
		Creature:     creature,
		LevelsGained: creature.Level - oldLevel,
		ExpToNext:    engine.ExpToNext(creature.Exp),
	}, nil
}

// GrantPlayerRewards credits the wallet hash with HINCRBY
func (c *redisCollection) GrantPlayerRewards(ctx context.Context, input *GrantPlayerRewardsInput) (*GrantPlayerRewardsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}
	if input.Coins < 0 || input.TrainerExp < 0 {
		return nil, errors.InvalidArgument("rewards cannot be negative")
	}

	key := walletKey(input.PlayerID)
	pipe := c.client.TxPipeline()
	coinsCmd := pipe.HIncrBy(ctx, key, fieldCoins, input.Coins)
	expCmd := pipe.HIncrBy(ctx, key, fieldTrainerExp, input.TrainerExp)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to credit wallet")
	}

	return &GrantPlayerRewardsOutput{
		Coins:      coinsCmd.Val(),
		TrainerExp: expCmd.Val(),
	}, nil
}

// SpendMana deducts mana, refusing to go below zero
func (c *redisCollection) SpendMana(ctx context.Context, input *SpendManaInput) (*SpendManaOutput, error) {
	if input == nil || input.CreatureID == "" {
		return nil, errors.InvalidArgument("creature ID cannot be empty")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgument("amount cannot be negative")
	}

	creature, err := c.getCreature(ctx, input.CreatureID)
	if err != nil {
		return nil, err
	}

	if creature.MP < input.Amount {
		return nil, errors.FailedPreconditionf("creature %s has %d MP, needs %d",
			creature.ID, creature.MP, input.Amount)
	}

	creature.MP -= input.Amount
	creature.UpdatedAt = c.clock.Now().Unix()

	if err := c.putCreature(ctx, creature); err != nil {
		return nil, err
	}

	return &SpendManaOutput{RemainingMP: creature.MP}, nil
}

func (c *redisCollection) getCreature(ctx context.Context, creatureID string) (*game.PlayerCreature, error) {
	creatureJSON, err := c.client.Get(ctx, creatureKey(creatureID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("creature %s not found", creatureID)
		}
		return nil, errors.Wrapf(err, "failed to get creature from Redis")
	}

	var creature game.PlayerCreature
	if err := json.Unmarshal([]byte(creatureJSON), &creature); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal creature")
	}

	return &creature, nil
}

func (c *redisCollection) putCreature(ctx context.Context, creature *game.PlayerCreature) error {
	creatureJSON, err := json.Marshal(creature)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal creature")
	}

	if err := c.client.Set(ctx, creatureKey(creature.ID), creatureJSON, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store creature")
	}

	return nil
}

func creatureKey(creatureID string) string {
	return creatureKeyPrefix + creatureID
}

func listKey(playerID string) string {
	return fmt.Sprintf("%s%s", listKeyPrefix, playerID)
}

func activeKey(playerID string) string {
	return activeKeyPrefix + playerID
}

func walletKey(playerID string) string {
	return walletKeyPrefix + playerID
}
