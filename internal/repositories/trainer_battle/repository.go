// Package trainerbattle provides repository interface and types for trainer
// battles. A battle walks a trainer's team in order; the prize claim and the
// settlement are both write-once.
package trainerbattle

import (
	"context"
	"time"

	"github.com/wildgrove/encounter-api/internal/entities/game"
)

// State is the lifecycle state of a battle
type State string

// Battle states
const (
	StateInProgress State = "IN_PROGRESS"
	StateComplete   State = "COMPLETE"
)

// Battle is one player's active battle against one trainer's team
type Battle struct {
	// Unique battle identifier (e.g., "btl_<uuid>")
	ID string

	// Player fighting the battle
	PlayerID string

	// Trainer whose team is being fought
	TrainerID string

	// Team is a frozen snapshot of the trainer's creatures, in fight order
	Team []game.BattleCreature

	// CurrentIndex points at the creature currently fighting; equals
	// len(Team) once every creature has fainted
	CurrentIndex int32

	// Lifecycle state
	State State

	// When this battle was created
	CreatedAt time.Time

	// When this battle expires
	ExpiresAt time.Time
}

// Current returns the creature currently fighting, or nil when the team is
// exhausted
func (b *Battle) Current() *game.BattleCreature {
	if b.CurrentIndex < 0 || int(b.CurrentIndex) >= len(b.Team) {
		return nil
	}
	return &b.Team[b.CurrentIndex]
}

// Settlement is the write-once record of a completed battle's rewards
type Settlement struct {
	BattleID  string
	PlayerID  string
	TrainerID string

	CoinsAwarded      int64
	TrainerExpAwarded int64
	CreatureExpGained int64
	LevelsGained      int32

	// PrizeAwarded is true only on the settlement that won the one-time
	// prize claim
	PrizeAwarded    bool
	PrizeCreatureID string

	SettledAt time.Time
}

// CreateInput contains parameters for creating an active battle
type CreateInput struct {
	Battle *Battle
	TTL    time.Duration
}

// CreateOutput contains the result of creating a battle
type CreateOutput struct {
	Battle *Battle
}

// GetInput contains parameters for retrieving a player's active battle
type GetInput struct {
	PlayerID string
}

// GetOutput contains the result of retrieving a battle
type GetOutput struct {
	Battle *Battle
}

// ClaimPrizeInput contains parameters for the one-time prize claim
type ClaimPrizeInput struct {
	PlayerID  string
	TrainerID string
}

// ClaimPrizeOutput reports whether this call won the claim
type ClaimPrizeOutput struct {
	Won bool
}

// SaveSettlementInput contains parameters for recording a settlement
type SaveSettlementInput struct {
	Settlement *Settlement
	TTL        time.Duration
}

// SaveSettlementOutput contains the stored settlement
type SaveSettlementOutput struct {
	Settlement *Settlement
}

// GetSettlementInput contains parameters for retrieving a settlement
type GetSettlementInput struct {
	PlayerID  string
	TrainerID string
}

// GetSettlementOutput contains the result of retrieving a settlement
type GetSettlementOutput struct {
	Settlement *Settlement
}

// AdvanceRotationInput contains parameters for moving a player to the next
// trainer in the roster
type AdvanceRotationInput struct {
	PlayerID string
}

// AdvanceRotationOutput contains the new rotation position
type AdvanceRotationOutput struct {
	Position int64
}

// GetRotationInput contains parameters for reading a player's roster position
type GetRotationInput struct {
	PlayerID string
}

// GetRotationOutput contains the player's roster position
type GetRotationOutput struct {
	Position int64
}

// Repository defines the storage interface for trainer battles
type Repository interface {
	// Create stores a new IN_PROGRESS battle. It fails with AlreadyExists
	// when the player already has one; the create is atomic.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// GetActive retrieves the player's active battle
	GetActive(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces the player's active battle, preserving its remaining
	// TTL
	Update(ctx context.Context, battle *Battle) error

	// ClaimPrize performs the one-time prize claim for a player/trainer
	// pair. Exactly one concurrent caller observes Won=true.
	ClaimPrize(ctx context.Context, input ClaimPrizeInput) (*ClaimPrizeOutput, error)

	// SaveSettlement deletes the active battle and stores the settlement
	// record in one transaction
	SaveSettlement(ctx context.Context, input SaveSettlementInput) (*SaveSettlementOutput, error)

	// GetSettlement retrieves a settlement record
	GetSettlement(ctx context.Context, input GetSettlementInput) (*GetSettlementOutput, error)

	// AdvanceRotation moves the player one step forward in the trainer
	// roster and returns the new position
	AdvanceRotation(ctx context.Context, input AdvanceRotationInput) (*AdvanceRotationOutput, error)

	// GetRotation reads the player's current roster position; a player who
	// never battled is at position 0
	GetRotation(ctx context.Context, input GetRotationInput) (*GetRotationOutput, error)
}
