package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildgrove/encounter-api/internal/engine"
	"github.com/wildgrove/encounter-api/internal/pkg/rng"
)

func TestCaptureChance_Bounds(t *testing.T) {
	// sweep the whole input space: chance must stay inside [0.02, 0.99]
	multipliers := []float64{0.5, 1, 1.5, 2, 5}
	for rate := int32(1); rate <= 255; rate += 2 {
		for _, mult := range multipliers {
			maxHP := int32(40)
			for hp := int32(0); hp <= maxHP; hp += 4 {
				chance := engine.CaptureChance(rate, hp, maxHP, mult)
				require.GreaterOrEqual(t, chance, engine.MinCaptureChance)
				require.LessOrEqual(t, chance, engine.MaxCaptureChance)
			}
		}
	}
}

func TestCaptureChance_FloorAndCeiling(t *testing.T) {
	// hopeless case still has the 2% floor
	low := engine.CaptureChance(1, 100, 100, 0.5)
	assert.Equal(t, engine.MinCaptureChance, low)

	// guaranteed-looking case is still capped at 99%
	high := engine.CaptureChance(255, 0, 100, 5)
	assert.Equal(t, engine.MaxCaptureChance, high)
}

func TestCaptureChance_MonotonicInDamage(t *testing.T) {
	// holding rate and multiplier fixed, chance strictly increases as HP
	// drops toward zero (until the ceiling clamps it)
	const maxHP = int32(50)
	prev := 0.0
	for hp := maxHP; hp >= 0; hp-- {
		chance := engine.CaptureChance(100, hp, maxHP, 1)
		if hp < maxHP && chance < engine.MaxCaptureChance {
			assert.Greaterf(t, chance, prev, "chance must rise as hp falls (hp=%d)", hp)
		}
		prev = chance
	}
}

func TestCaptureChance_FullHealthFactor(t *testing.T) {
	// at full health the hp factor is exactly 1/3
	chance := engine.CaptureChance(255, 60, 60, 1)
	assert.InDelta(t, 1.0/3.0, chance, 1e-9)
}

func TestCaptureChance_ClampsInputs(t *testing.T) {
	// rate outside [1,255] clamps rather than exploding the probability
	assert.Equal(t,
		engine.CaptureChance(255, 10, 20, 1),
		engine.CaptureChance(1000, 10, 20, 1))
	assert.Equal(t,
		engine.CaptureChance(1, 10, 20, 1),
		engine.CaptureChance(-3, 10, 20, 1))

	// zero multiplier behaves as the basic tool
	assert.Equal(t,
		engine.CaptureChance(100, 10, 20, 1),
		engine.CaptureChance(100, 10, 20, 0))

	// degenerate max HP does not divide by zero
	chance := engine.CaptureChance(100, 0, 0, 1)
	assert.GreaterOrEqual(t, chance, engine.MinCaptureChance)
	assert.LessOrEqual(t, chance, engine.MaxCaptureChance)
}

func TestCaptureChance_ToolMultiplierScales(t *testing.T) {
	base := engine.CaptureChance(60, 30, 60, 1)
	boosted := engine.CaptureChance(60, 30, 60, 2)
	assert.InDelta(t, base*2, boosted, 1e-9)
}

func TestAttemptCapture(t *testing.T) {
	// trial succeeds iff the uniform draw lands under the chance
	assert.True(t, engine.AttemptCapture(0.5, &rng.Fixed{Floats: []float64{0.49}}))
	assert.False(t, engine.AttemptCapture(0.5, &rng.Fixed{Floats: []float64{0.5}}))
	assert.False(t, engine.AttemptCapture(0.5, &rng.Fixed{Floats: []float64{0.99}}))
}

func TestAttemptCapture_ObservedRate(t *testing.T) {
	src := rng.NewSeeded(99)
	const trials = 100000
	chance := engine.CaptureChance(120, 10, 40, 1)

	caught := 0
	for i := 0; i < trials; i++ {
		if engine.AttemptCapture(chance, src) {
			caught++
		}
	}

	assert.InDelta(t, chance, float64(caught)/trials, 0.01)
}
