package game

// RewardSource tags where a creature grant came from
type RewardSource string

// Reward sources
const (
	RewardSourceCapture       RewardSource = "capture"
	RewardSourceBattleVictory RewardSource = "battle_victory"
)

// RewardGrant is the common payload for granting a creature, consumed by
// both the capture flow and the trainer battle flow
type RewardGrant struct {
	Source    RewardSource
	PlayerID  string
	SpeciesID string
	Level     int32
}
