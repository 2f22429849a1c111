package game

// TrainerCreature is one slot of a trainer's configured team template
type TrainerCreature struct {
	SpeciesID string
	Level     int32
}

// Trainer is immutable content describing an NPC trainer
type Trainer struct {
	ID   string
	Name string

	// Team is battled in order; the battle is complete when every member
	// has fainted
	Team []TrainerCreature

	// RewardCoins granted on victory; 0 selects the level-scaled fallback
	RewardCoins int64

	// RewardExp is trainer experience granted on victory; 0 selects the
	// level-scaled fallback
	RewardExp int64

	// PrizeSpeciesID is granted once per player on first victory; empty
	// means no prize creature
	PrizeSpeciesID string
	PrizeLevel     int32
}
