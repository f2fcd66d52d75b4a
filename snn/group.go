// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// Group is the runtime counterpart of GroupConfig: the per-group state
// that changes tick to tick (dopamine concentration and its logged
// history) plus the spike-generator bit vector a host-side SPIKE_GEN
// phase populates for Poisson groups with IsSpikeGenerator set. This
// generalizes leabra.Layer's single DA float scalar (set in
// leabra/neuromod.go's SendDA) into a decaying, logged concentration,
// the way the STP ring buffer already logs history by simTime-mod-N.
type Group struct {
	Cfg GroupConfig

	// DA is the current dopamine concentration, decayed toward BaseDP
	// each tick by GROUP_STATE_UPDATE (spec 4.6).
	DA float32

	// daLog is the 1000-entry per-ms circular buffer of DA, indexed by
	// simTime mod 1000 (spec section 6, "Outputs").
	daLog [1000]float32

	// spikeGenBits is the user-supplied spike-generator bit vector, one
	// bit per local neuron offset, for groups with IsSpikeGenerator set.
	// It is written by the external SPIKE_GEN phase (out of scope) via
	// SetSpikeGenBit and only ever read by FIND_FIRING.
	spikeGenBits []uint64
}

// NewGroup returns a Group with DA initialized to its configured
// baseline and a spike-generator bit vector sized for NumN neurons.
func NewGroup(cfg GroupConfig) *Group {
	g := &Group{Cfg: cfg, DA: cfg.BaseDP}
	if cfg.IsSpikeGenerator {
		g.spikeGenBits = make([]uint64, (cfg.NumN+63)/64)
	}
	return g
}

// AddDA atomically adds delta to the group's dopamine concentration,
// the operation CURRENT_UPDATE_D1/D2 perform when a presynaptic
// TargetDA group delivers a spike (spec 4.3 step 1): many delivery
// goroutines can race on the same post-group's DA concentration.
func (g *Group) AddDA(delta float32) {
	atomicAddFloat32(&g.DA, delta)
}

// DecayDA applies one tick's worth of dopamine decay toward BaseDP,
// per GROUP_STATE_UPDATE: "for each group with DA-modulated STDP and
// grpDA > baseDP: grpDA *= decayDP" (spec 4.6).
func (g *Group) DecayDA() {
	if g.Cfg.EParams.Typ == DAModSTDP || g.Cfg.IParams.Typ == DAModSTDP {
		if g.DA > g.Cfg.BaseDP {
			g.DA *= g.Cfg.DecayDP
		}
	}
}

// LogDA records the current DA concentration into the circular buffer
// at simTime mod 1000.
func (g *Group) LogDA(simTime int32) {
	g.daLog[simTime%1000] = g.DA
}

// DALogAt returns the logged DA concentration at the given millisecond
// offset within a second (0..999).
func (g *Group) DALogAt(msInSecond int32) float32 {
	return g.daLog[msInSecond%1000]
}

// SetSpikeGenBit sets or clears bit localN (0-based within the group)
// of the spike-generator vector. This is the narrow host-side setter
// spec section 6 reserves for the external SPIKE_GEN phase.
func (g *Group) SetSpikeGenBit(localN int32, v bool) {
	word := localN / 64
	bit := uint(localN % 64)
	if v {
		g.spikeGenBits[word] |= 1 << bit
	} else {
		g.spikeGenBits[word] &^= 1 << bit
	}
}

// SpikeGenBit reads bit localN of the spike-generator vector, per the
// FIND_FIRING rule "read bit (n - group.startN + group.Noffset)"
// (spec 4.2); localN is already that offset-adjusted index.
func (g *Group) SpikeGenBit(localN int32) bool {
	word := localN / 64
	bit := uint(localN % 64)
	return g.spikeGenBits[word]&(1<<bit) != 0
}
