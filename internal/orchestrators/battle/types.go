package battle

// StartBattleInput contains parameters for starting a trainer battle
type StartBattleInput struct {
	PlayerID  string
	TrainerID string
}

// BattleCreatureView is the client-facing view of one opposing team member
type BattleCreatureView struct {
	SpeciesID string
	Name      string
	Level     int32
	HP        int32
	MaxHP     int32
}

// StartBattleOutput contains the created battle
type StartBattleOutput struct {
	BattleID    string
	TrainerID   string
	TrainerName string
	Team        []BattleCreatureView
	Opponent    *BattleCreatureView
}

// AttackInput contains parameters for one battle attack
type AttackInput struct {
	PlayerID string
	BattleID string
	MoveID   string
}

// PlayerState reports the attacking creature's resources after a move
type PlayerState struct {
	CreatureID string
	MP         int32
	MaxMP      int32
}

// AttackOutput contains the result of one battle attack
type AttackOutput struct {
	Damage  int32
	HP      int32
	MaxHP   int32
	Fainted bool

	// Next is the opponent sent out after a faint, nil when none remain
	Next *BattleCreatureView

	// Complete is true when the whole team has fainted
	Complete bool

	Player  *PlayerState
	Message string
}

// ResolveBattleInput contains parameters for settling a completed battle
type ResolveBattleInput struct {
	PlayerID  string
	TrainerID string
}

// CreatureResult reports the player creature's gains from the battle
type CreatureResult struct {
	CreatureID      string
	ExpGained       int64
	LevelsGained    int32
	HappinessGained int32
	ExpToNext       int64
}

// PrizeResult reports the one-time prize creature grant
type PrizeResult struct {
	SpeciesID      string
	Name           string
	CreatureID     string
	AlreadyClaimed bool
}

// RewardsResult reports the currency and trainer experience settlement
type RewardsResult struct {
	Coins      int64
	TrainerExp int64
	Prize      *PrizeResult
}

// ResolveBattleOutput contains the settlement. A duplicate resolve returns
// the stored settlement with AlreadyResolved set.
type ResolveBattleOutput struct {
	Creature *CreatureResult
	Rewards  *RewardsResult

	// NextTrainerID is the roster entry the player rotates to
	NextTrainerID string

	AlreadyResolved bool
}
