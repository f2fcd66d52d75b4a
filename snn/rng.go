// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "math/rand/v2"

// MaxRange is the RNG contract's range ceiling: FIND_FIRING draws
// r in [0, MaxRange) and fires a rate-driven Poisson neuron iff
// r*1000/MaxRange < rate[n] (spec 4.2).
const MaxRange = 1 << 15

// PoissonSource is the RNG contract FIND_FIRING relies on for rate-driven
// Poisson neurons. Refreshing rate[] itself, and reseeding, are host-side
// concerns out of scope for this engine (spec section 6); FIND_FIRING
// only ever calls Uint32N.
type PoissonSource interface {
	// Uint32N returns a value in [0, n).
	Uint32N(n uint32) uint32
}

// MathRandSource is the default PoissonSource, wrapping math/rand/v2 the
// way the sibling emer/emergent erand package wraps math/rand rather
// than calling the package-level functions directly -- this keeps the
// source instance-scoped so multiple Networks never share RNG state.
type MathRandSource struct {
	rnd *rand.Rand
}

// NewMathRandSource returns a MathRandSource seeded from seed1, seed2,
// matching the two-uint64 seed shape of rand.NewPCG.
func NewMathRandSource(seed1, seed2 uint64) *MathRandSource {
	return &MathRandSource{rnd: rand.New(rand.NewPCG(seed1, seed2))}
}

// Uint32N returns a value in [0, n).
func (m *MathRandSource) Uint32N(n uint32) uint32 {
	return uint32(m.rnd.Uint32N(n))
}

// Fires reports whether a Poisson draw from src fires against rate
// (spikes/sec), per the RNG contract of spec 4.2.
func Fires(src PoissonSource, rate float32) bool {
	r := src.Uint32N(MaxRange)
	return float32(r)*1000/float32(MaxRange) < rate
}
