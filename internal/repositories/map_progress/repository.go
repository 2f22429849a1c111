// Package mapprogress provides repository interface and types for per-map
// player progress counters. Counters only ever go up.
package mapprogress

import (
	"context"
)

// Progress is one player's counters on one map. A player who never searched
// a map has the zero-value record.
type Progress struct {
	PlayerID string
	MapID    string

	// TotalSearches counts every search performed on the map, whether or
	// not it produced an encounter
	TotalSearches int64

	// MapExp accumulates experience earned on the map
	MapExp int64
}

// RecordSearchInput contains parameters for recording one search
type RecordSearchInput struct {
	PlayerID string
	MapID    string

	// ExpGained is added to the map experience counter alongside the
	// search increment
	ExpGained int64
}

// RecordSearchOutput contains the counters after the increment
type RecordSearchOutput struct {
	Progress *Progress
}

// GetInput contains parameters for reading a player's progress on a map
type GetInput struct {
	PlayerID string
	MapID    string
}

// GetOutput contains the result of reading progress
type GetOutput struct {
	Progress *Progress
}

// AddExpInput contains parameters for adding map experience without a search
type AddExpInput struct {
	PlayerID string
	MapID    string
	Exp      int64
}

// AddExpOutput contains the counters after the addition
type AddExpOutput struct {
	Progress *Progress
}

// Repository defines the storage interface for map progress
type Repository interface {
	// RecordSearch atomically increments the search counter (and optional
	// map experience) and returns the new values. Concurrent calls each
	// observe a distinct counter value.
	RecordSearch(ctx context.Context, input RecordSearchInput) (*RecordSearchOutput, error)

	// Get reads the player's progress on a map. A map the player never
	// searched returns a zero-value record, not an error.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// AddExp atomically adds map experience outside of a search (e.g. a
	// capture on the map)
	AddExp(ctx context.Context, input AddExpInput) (*AddExpOutput, error)
}
