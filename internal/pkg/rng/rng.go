// Package rng provides the random source abstraction used by the engine.
package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source produces the uniform random values the engine draws from. Gate
// rolls and capture trials consume Float64; weighted draws and level rolls
// consume Int64N.
type Source interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
	// Int64N returns a uniform value in [0, n). n must be > 0.
	Int64N(n int64) int64
}

// cryptoSource is the default production source, reading from crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		// fall back to math/rand/v2
		return rand.Float64()
	}

	// top 53 bits give a uniform float in [0, 1)
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

func (c cryptoSource) Int64N(n int64) int64 {
	if n <= 0 {
		panic("rng: Int64N called with n <= 0")
	}

	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return rand.Int64N(n)
	}

	// modulo bias is negligible for the table sizes this engine draws over
	u := binary.BigEndian.Uint64(buf[:]) >> 1
	return int64(u) % n // #nosec G115 // top bit cleared above
}

// Default returns the crypto-backed source
func Default() Source { return cryptoSource{} }

// seededSource is a replicable source for tests and simulations
type seededSource struct {
	r *rand.Rand
}

// NewSeeded returns a deterministic source seeded with the given value
func NewSeeded(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() float64     { return s.r.Float64() }
func (s *seededSource) Int64N(n int64) int64 { return s.r.Int64N(n) }

// Fixed is a test source that replays scripted values. Float64 values come
// from Floats in order (repeating the last one when exhausted); Int64N
// values come from Ints the same way, taken modulo n.
type Fixed struct {
	Floats []float64
	Ints   []int64

	fi, ii int
}

// Float64 returns the next scripted float
func (f *Fixed) Float64() float64 {
	if len(f.Floats) == 0 {
		return 0
	}
	v := f.Floats[min(f.fi, len(f.Floats)-1)]
	f.fi++
	return v
}

// Int64N returns the next scripted int modulo n
func (f *Fixed) Int64N(n int64) int64 {
	if n <= 0 {
		panic("rng: Int64N called with n <= 0")
	}
	if len(f.Ints) == 0 {
		return 0
	}
	v := f.Ints[min(f.ii, len(f.Ints)-1)]
	f.ii++
	return v % n
}
