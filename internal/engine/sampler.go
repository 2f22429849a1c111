// Package engine implements the encounter and battle resolution algorithms:
// weighted sampling, the progression curve, the capture model, and the
// damage/stat formulas. Everything here is pure; randomness comes in through
// rng.Source so callers control determinism.
package engine

import (
	"math"

	"github.com/wildgrove/encounter-api/internal/entities/game"
	"github.com/wildgrove/encounter-api/internal/pkg/rng"
)

// TotalWeight sums the weights of a table. Negative weights count as zero.
func TotalWeight(entries []game.WeightedEntry) int64 {
	var total int64
	for _, e := range entries {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	return total
}

// Draw performs a weighted random draw over the table and returns the chosen
// reference ID. The second return is false when the table is empty or its
// total weight is zero.
//
// The draw picks r uniform in [0, total) and returns the first entry whose
// cumulative weight exceeds r, walking the table in insertion order. Given
// the same table the mapping from r to entry is deterministic, so observed
// frequencies agree with RelativePercent.
func Draw(entries []game.WeightedEntry, src rng.Source) (string, bool) {
	total := TotalWeight(entries)
	if total == 0 {
		return "", false
	}

	r := src.Int64N(total)
	var cum int64
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		cum += e.Weight
		if r < cum {
			return e.RefID, true
		}
	}

	// unreachable: r < total and the cumulative sum reaches total
	return entries[len(entries)-1].RefID, true
}

// RelativePercent returns round(100 * weight / total) for display. Sampling
// always uses raw weights, never this rounded value.
func RelativePercent(weight, total int64) int32 {
	if total <= 0 || weight <= 0 {
		return 0
	}
	return int32(math.Round(100 * float64(weight) / float64(total)))
}
