// Package game implements the creature-collection game entities.
// NOTE: These are data-only structs. All calculations (sampling, capture
// chance, progression) are done by internal/engine, not here.
package game

// WeightedEntry is one row of a weighted table. Draw probability is
// weight / total weight of the table; a zero-weight entry can never be drawn.
type WeightedEntry struct {
	// RefID references a species or item by ID
	RefID string

	// Weight is the non-negative integer likelihood of this entry
	Weight int64
}

// MapDefinition is immutable content describing a searchable map. Owned by
// content authoring; read-only to the engine.
type MapDefinition struct {
	ID   string
	Slug string
	Name string

	// Wild creature levels are rolled uniformly in [LevelMin, LevelMax]
	LevelMin int32
	LevelMax int32

	// EncounterRate is the probability in [0, 1] that a search produces a
	// wild encounter
	EncounterRate float64

	// ItemDropRate is the probability in [0, 1] that a search produces an
	// item drop, rolled independently of the encounter gate
	ItemDropRate float64

	// RequiredSearches is the search count on the source map needed to
	// unlock this map; 0 means always unlocked
	RequiredSearches int64

	// UnlockSourceMapID names the map whose search counter gates this one;
	// empty means always unlocked
	UnlockSourceMapID string

	// Species is the weighted encounter table
	Species []WeightedEntry

	// Items is the weighted drop table
	Items []WeightedEntry
}
