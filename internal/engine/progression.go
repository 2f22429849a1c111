package engine

// Experience curve constants
const (
	// BaseExp is the experience required to clear level 1
	BaseExp = 250

	// ExpPerLevel is the additional requirement added per level
	ExpPerLevel = 100
)

// ExpRequired returns the experience needed to advance from the given level
// to the next one: 250 + (level-1)*100. Defined for level >= 1; lower inputs
// are treated as level 1.
//
// This single curve is shared by player level, creature level, and per-map
// level.
func ExpRequired(level int32) int64 {
	if level < 1 {
		level = 1
	}
	return BaseExp + int64(level-1)*ExpPerLevel
}

// TotalExpForLevel returns the cumulative experience needed to reach the
// given level from level 1. Level 1 costs nothing; level 2 costs
// ExpRequired(1); and so on.
func TotalExpForLevel(level int32) int64 {
	var total int64
	for l := int32(1); l < level; l++ {
		total += ExpRequired(l)
	}
	return total
}

// LevelFromExp returns the greatest level whose cumulative required
// experience does not exceed totalExp. Zero experience is level 1.
func LevelFromExp(totalExp int64) int32 {
	level := int32(1)
	var cum int64
	for {
		cum += ExpRequired(level)
		if cum > totalExp {
			return level
		}
		level++
	}
}

// ExpToNext returns the experience still needed to reach the next level from
// the given total.
func ExpToNext(totalExp int64) int64 {
	level := LevelFromExp(totalExp)
	return TotalExpForLevel(level+1) - totalExp
}
