package encounter

import (
	"github.com/wildgrove/encounter-api/internal/entities/game"
)

// SearchInput contains parameters for searching a map
type SearchInput struct {
	PlayerID string
	MapSlug  string
}

// WildCreature is the client-facing view of an encountered creature
type WildCreature struct {
	SpeciesID string
	Name      string
	Level     int32
	HP        int32
	MaxHP     int32
}

// ItemDrop reports an item found during a search
type ItemDrop struct {
	ItemID   string
	Name     string
	Quantity int64
}

// MapProgress is the client-facing view of a player's counters on a map
type MapProgress struct {
	TotalSearches int64
	MapExp        int64
	MapLevel      int32
	ExpToNext     int64
}

// SearchOutput contains the result of a search. Encounter and Item are
// independent; a search can yield either, both, or neither.
type SearchOutput struct {
	// EncounterID is set when a wild creature appeared
	EncounterID string
	Creature    *WildCreature

	// Item is set when the drop gate succeeded
	Item *ItemDrop

	Progress *MapProgress
}

// GetMapStateInput contains parameters for reading a map's state
type GetMapStateInput struct {
	PlayerID string
	MapSlug  string
}

// UnlockStatus describes a map's unlock gate for progress display. The raw
// source-map counter is reported, not clamped.
type UnlockStatus struct {
	RequiredSearches int64
	CurrentSearches  int64
	SourceMapID      string
	SourceMapName    string
}

// GetMapStateOutput contains the result of reading a map's state
type GetMapStateOutput struct {
	MapID    string
	Name     string
	Locked   bool
	Unlock   *UnlockStatus
	Progress *MapProgress
}

// AttackInput contains parameters for attacking the encountered creature
type AttackInput struct {
	PlayerID    string
	EncounterID string
}

// AttackOutput contains the creature's state after the attack
type AttackOutput struct {
	Damage   int32
	HP       int32
	MaxHP    int32
	Defeated bool
	Message  string
}

// CatchInput contains parameters for a basic capture attempt
type CatchInput struct {
	PlayerID    string
	EncounterID string
}

// UseCaptureToolInput contains parameters for a capture attempt with a tool
type UseCaptureToolInput struct {
	PlayerID    string
	EncounterID string
	ToolID      string
}

// CatchOutput contains the result of a capture attempt
type CatchOutput struct {
	Caught  bool
	Chance  float64
	Message string

	// Creature is the persisted collection entry, set only on success
	Creature *game.PlayerCreature
}

// RunInput contains parameters for fleeing the encounter
type RunInput struct {
	PlayerID    string
	EncounterID string
}

// RunOutput contains the result of fleeing
type RunOutput struct {
	Message string
}
