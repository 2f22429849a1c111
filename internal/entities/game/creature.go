package game

// CreatureSnapshot is the frozen view of a wild creature for the lifetime of
// one encounter session
type CreatureSnapshot struct {
	SpeciesID   string
	Name        string
	Level       int32
	CurrentHP   int32
	MaxHP       int32
	Defense     int32
	CaptureRate int32
}

// BattleCreature is one member of an in-progress trainer battle team
type BattleCreature struct {
	SpeciesID string
	Name      string
	Level     int32
	CurrentHP int32
	MaxHP     int32
	Attack    int32
	Defense   int32
	Speed     int32
}

// PlayerCreature is a persisted collection entry. The collection store owns
// these records; the engine only creates them on capture or battle victory.
type PlayerCreature struct {
	ID        string
	PlayerID  string
	SpeciesID string
	Name      string
	Level     int32
	Exp       int64
	CurrentHP int32
	MaxHP     int32
	Attack    int32
	Defense   int32
	Speed     int32
	Happiness int32
	MP        int32
	MaxMP     int32
	CreatedAt int64
	UpdatedAt int64
}
