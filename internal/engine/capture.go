package engine

import (
	"github.com/wildgrove/encounter-api/internal/pkg/rng"
)

// Capture chance bounds. The floor keeps every capture possible; the ceiling
// keeps every capture uncertain.
const (
	MinCaptureChance = 0.02
	MaxCaptureChance = 0.99
)

// CaptureChance computes the probability of a capture attempt succeeding.
//
// rate is clamped to [1, 255]; the HP factor (3*maxHP - 2*currentHP) /
// (3*maxHP) rises from 1/3 at full health toward 1 as the creature weakens;
// the product rate/255 * hpFactor * toolMultiplier is clamped into
// [MinCaptureChance, MaxCaptureChance]. A toolMultiplier of 0 or less means
// the basic tool and is treated as 1.
func CaptureChance(captureRate, currentHP, maxHP int32, toolMultiplier float64) float64 {
	rate := captureRate
	if rate < 1 {
		rate = 1
	}
	if rate > 255 {
		rate = 255
	}

	if toolMultiplier <= 0 {
		toolMultiplier = 1
	}

	hpFactor := 1.0
	if maxHP > 0 {
		cur := currentHP
		if cur < 0 {
			cur = 0
		}
		if cur > maxHP {
			cur = maxHP
		}
		hpFactor = float64(3*maxHP-2*cur) / float64(3*maxHP)
	}

	raw := float64(rate) / 255 * hpFactor * toolMultiplier

	if raw < MinCaptureChance {
		return MinCaptureChance
	}
	if raw > MaxCaptureChance {
		return MaxCaptureChance
	}
	return raw
}

// AttemptCapture runs the single bernoulli trial that decides a capture:
// one uniform value in [0,1), success iff it lands under the chance.
func AttemptCapture(chance float64, src rng.Source) bool {
	return src.Float64() < chance
}
