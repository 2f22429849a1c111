package game

// Species is immutable content describing a creature species
type Species struct {
	ID   string
	Name string

	// CaptureRate governs base catch difficulty, 1-255
	CaptureRate int32

	BaseHP      int32
	BaseAttack  int32
	BaseDefense int32
	BaseSpeed   int32
}

// Move is immutable content describing a battle move. Power, type and cost
// are authoritative content data keyed by move ID.
type Move struct {
	ID   string
	Name string
	Type string

	// Power feeds the damage formula
	Power int32

	// Cost is the MP deducted from the attacker per use
	Cost int32
}
