// Package collection provides the client interface for the player collection
// service: owned creatures, the active battler, and the player wallet.
package collection

import (
	"context"

	"github.com/wildgrove/encounter-api/internal/entities/game"
)

//go:generate mockgen -destination=mock/mock_client.go -package=collectionmock github.com/wildgrove/encounter-api/internal/clients/collection Client

// CreateCreatureInput contains parameters for adding a creature to a
// player's collection
type CreateCreatureInput struct {
	Grant *game.RewardGrant
}

// CreateCreatureOutput contains the persisted creature
type CreateCreatureOutput struct {
	Creature *game.PlayerCreature
}

// GetActiveCreatureInput contains parameters for fetching the player's
// active battler
type GetActiveCreatureInput struct {
	PlayerID string
}

// GetActiveCreatureOutput contains the player's active battler
type GetActiveCreatureOutput struct {
	Creature *game.PlayerCreature
}

// GrantCreatureExpInput contains parameters for granting experience to one
// creature
type GrantCreatureExpInput struct {
	CreatureID string
	Exp        int64

	// Happiness is added alongside the experience
	Happiness int32
}

// GrantCreatureExpOutput reports the creature's state after the grant
type GrantCreatureExpOutput struct {
	Creature     *game.PlayerCreature
	LevelsGained int32
	ExpToNext    int64
}

// GrantPlayerRewardsInput contains parameters for crediting the player
// wallet
type GrantPlayerRewardsInput struct {
	PlayerID   string
	Coins      int64
	TrainerExp int64
}

// GrantPlayerRewardsOutput reports the wallet after the credit
type GrantPlayerRewardsOutput struct {
	Coins      int64
	TrainerExp int64
}

// SpendManaInput contains parameters for deducting mana from a creature
type SpendManaInput struct {
	CreatureID string
	Amount     int32
}

// SpendManaOutput reports the creature's remaining mana
type SpendManaOutput struct {
	RemainingMP int32
}

// Client defines the interface for the collection service
type Client interface {
	// CreateCreature adds a new creature to the player's collection, with
	// stats derived from its species and level
	CreateCreature(ctx context.Context, input *CreateCreatureInput) (*CreateCreatureOutput, error)

	// GetActiveCreature fetches the player's active battler. It fails with
	// FailedPrecondition when the player has no usable creature.
	GetActiveCreature(ctx context.Context, input *GetActiveCreatureInput) (*GetActiveCreatureOutput, error)

	// GrantCreatureExp adds experience (and happiness) to a creature and
	// applies any level-ups
	GrantCreatureExp(ctx context.Context, input *GrantCreatureExpInput) (*GrantCreatureExpOutput, error)

	// GrantPlayerRewards credits coins and trainer experience to the
	// player wallet
	GrantPlayerRewards(ctx context.Context, input *GrantPlayerRewardsInput) (*GrantPlayerRewardsOutput, error)

	// SpendMana deducts mana from a creature. It fails with
	// FailedPrecondition when the creature lacks the amount.
	SpendMana(ctx context.Context, input *SpendManaInput) (*SpendManaOutput, error)
}
