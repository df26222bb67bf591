// Package rng provides the tiny deterministic generator the games use for
// obstacle placement and AI decisions. It makes no uniformity claims beyond
// what a game needs; a given seed always reproduces the same stream.
package rng

import "time"

// Classic Numerical Recipes LCG constants.
const (
	multiplier = 1664525
	increment  = 1013904223
)

// LCG is a 32-bit linear congruential generator.
type LCG struct {
	state uint32
}

// New creates a generator seeded with seed.
func New(seed uint32) *LCG {
	return &LCG{state: seed}
}

// SeedFrom mixes a wall-clock reading with a process or window identifier so
// that separate runs diverge.
func SeedFrom(now time.Time, id uintptr) uint32 {
	return uint32(now.UnixMilli()) ^ uint32(id)
}

// Seed resets the generator state.
func (g *LCG) Seed(seed uint32) {
	g.state = seed
}

// Next advances the recurrence and returns the new state.
func (g *LCG) Next() uint32 {
	g.state = g.state*multiplier + increment
	return g.state
}

// Between returns a value in [lo, hi] by modulo reduction.
// A range with hi < lo collapses to lo.
func (g *LCG) Between(lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return lo + int(g.Next()%uint32(hi-lo+1))
}

// Pick returns a value in [0, n). n <= 0 yields 0 without advancing.
func (g *LCG) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.Next() % uint32(n))
}
