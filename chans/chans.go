// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the point-neuron synaptic conductance channels
used by the spiking engine's STP_AND_DECAY and CONDUCTANCE_UPDATE
kernels: AMPA, NMDA, GABAa and GABAb, with optional biexponential
rise+decay variants for the two slow channels (NMDA, GABAb).
*/
package chans

//gosl: start chans

// SynChans holds the four conductance channels driven by synaptic input:
// AMPA and GABAa are always single-exponential decay; NMDA and GABAb may
// each independently be configured as a single decay variable or as a
// rise/decay pair.
type SynChans struct {
	AMPA float32 `desc:"fast excitatory (glutamate) conductance"`

	NMDA float32 `desc:"slow excitatory conductance, used when NMDARise is false"`

	NMDARise bool `desc:"track NMDA as a rise/decay pair (NMDAR, NMDAD) instead of the single NMDA variable"`

	NMDAR float32 `desc:"rise component of the NMDA conductance (NMDARise only)"`

	NMDAD float32 `desc:"decay component of the NMDA conductance (NMDARise only)"`

	GABAa float32 `desc:"fast inhibitory (GABA-A, chloride) conductance"`

	GABAb float32 `desc:"slow inhibitory conductance, used when GABAbRise is false"`

	GABAbRise bool `desc:"track GABAb as a rise/decay pair (GABAbR, GABAbD) instead of the single GABAb variable"`

	GABAbR float32 `desc:"rise component of the GABAb conductance (GABAbRise only)"`

	GABAbD float32 `desc:"decay component of the GABAb conductance (GABAbRise only)"`
}

// DecayParams holds the per-tick multiplicative decay (and, for the
// rise/decay pairs, rise) factors applied once per tick in STP_AND_DECAY,
// before any new spikes are accumulated for the tick.
type DecayParams struct {
	DAMPA float32 `desc:"per-tick AMPA decay multiplier, e.g. exp(-1/tauAMPA)"`

	DNMDA float32 `desc:"per-tick NMDA decay multiplier, applied to NMDA, or to NMDAD when NMDARise is true"`

	RNMDA float32 `desc:"per-tick NMDA rise multiplier, used when NMDARise is true"`

	SNMDA float32 `desc:"scales the per-spike increment applied to the NMDA rise/decay pair"`

	DGABAa float32 `desc:"per-tick GABAa decay multiplier"`

	DGABAb float32 `desc:"per-tick GABAb decay multiplier, applied to GABAb, or to GABAbD when GABAbRise is true"`

	RGABAb float32 `desc:"per-tick GABAb rise multiplier, used when GABAbRise is true"`

	SGABAb float32 `desc:"scales the per-spike increment applied to the GABAb rise/decay pair"`
}

// Defaults sets the decay time constants to values typical of a COBA
// Izhikevich network (time constants in ms; tick = 1 ms, so the
// multiplier for a single-exponential channel is 1 - 1/tau).
func (dp *DecayParams) Defaults() {
	dp.DAMPA = 1 - 1.0/5
	dp.DNMDA = 1 - 1.0/150
	dp.RNMDA = 1 - 1.0/2
	dp.SNMDA = 1
	dp.DGABAa = 1 - 1.0/6
	dp.DGABAb = 1 - 1.0/150
	dp.RGABAb = 1 - 1.0/2
	dp.SGABAb = 1
}

// Decay applies one tick's worth of exponential decay (and rise, for the
// biexponential channels) to sc, in place. This is STP_AND_DECAY's
// per-neuron channel-decay step (spec 4.7), run before any new synaptic
// input is accumulated for the tick.
func (dp *DecayParams) Decay(sc *SynChans) {
	sc.AMPA *= dp.DAMPA
	sc.GABAa *= dp.DGABAa
	if sc.NMDARise {
		sc.NMDAR *= dp.RNMDA
		sc.NMDAD *= dp.DNMDA
	} else {
		sc.NMDA *= dp.DNMDA
	}
	if sc.GABAbRise {
		sc.GABAbR *= dp.RGABAb
		sc.GABAbD *= dp.DGABAb
	} else {
		sc.GABAb *= dp.DGABAb
	}
}

// NMDAEff returns the effective NMDA conductance contribution, collapsing
// the rise/decay pair down to a single value the way the non-rise variant
// already is one.
func (sc *SynChans) NMDAEff() float32 {
	if sc.NMDARise {
		return sc.NMDAD - sc.NMDAR
	}
	return sc.NMDA
}

// GABAbEff returns the effective GABAb conductance contribution.
func (sc *SynChans) GABAbEff() float32 {
	if sc.GABAbRise {
		return sc.GABAbD - sc.GABAbR
	}
	return sc.GABAb
}

// AddNMDA adds a synaptic increment to the NMDA channel, routing to the
// rise/decay pair or the single decay variable as configured.
func (sc *SynChans) AddNMDA(dp *DecayParams, inc float32) {
	if sc.NMDARise {
		sc.NMDAR += dp.SNMDA * inc
		sc.NMDAD += dp.SNMDA * inc
	} else {
		sc.NMDA += inc
	}
}

// AddGABAb adds a synaptic increment to the GABAb channel, routing to the
// rise/decay pair or the single decay variable as configured.
func (sc *SynChans) AddGABAb(dp *DecayParams, inc float32) {
	if sc.GABAbRise {
		sc.GABAbR += dp.SGABAb * inc
		sc.GABAbD += dp.SGABAb * inc
	} else {
		sc.GABAb += inc
	}
}

//gosl: end chans
