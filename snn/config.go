// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "github.com/emer/snn/chans"

// Config holds the network-scoped options consumed by the tick engine.
// Everything here is produced by the external network builder (out of
// scope for this repository) and is immutable for the lifetime of the
// Network -- see spec section 6.
type Config struct {
	// MaxDelay is the largest per-synapse axonal delay, in ms, across
	// every group in the network. Must be >= 1.
	MaxDelay int32

	// NumN is the total neuron count, NumNReg + NumNPois.
	NumN int32

	// NumNReg is the count of regular (Izhikevich) neurons; they occupy
	// ids [0, NumNReg).
	NumNReg int32

	// NumNPois is the count of Poisson generators; they occupy ids
	// [NumNReg, NumNReg+NumNPois).
	NumNPois int32

	// NumGroups is the number of groups partitioning [0, NumN).
	NumGroups int32

	// MaxNumPreSynN is the largest number of presynaptic slots any single
	// post-synaptic neuron has; it sizes I_set's row count.
	MaxNumPreSynN int32

	// MaxSpikesD1 is the per-second capacity of the unit-delay firing table.
	MaxSpikesD1 int32

	// MaxSpikesD2 is the per-second capacity of the multi-delay firing table.
	MaxSpikesD2 int32

	// WithConductances selects COBA (true) over CUBA (false) synaptic
	// integration in CONDUCTANCE_UPDATE / NEURON_STATE_UPDATE.
	WithConductances bool

	// WithNMDARise tracks NMDA as a rise/decay pair instead of one decay variable.
	WithNMDARise bool

	// WithGABAbRise tracks GABAb as a rise/decay pair instead of one decay variable.
	WithGABAbRise bool

	// WithSTDP records the network-wide STDP option. The kernels do not
	// read it: STDP runs for a group exactly when GroupConfig.WithSTDP
	// is set.
	WithSTDP bool

	// WithSTP records the network-wide STP option. The kernels do not
	// read it: short-term plasticity runs for a group exactly when
	// GroupConfig.WithSTP is set.
	WithSTP bool

	// WithHomeostasis records the network-wide homeostasis option. The
	// kernels do not read it: homeostatic scaling applies to a group
	// exactly when GroupConfig.WithHomeostasis is set.
	WithHomeostasis bool

	// WithFixedWts records the network-wide fixed-weights option. The
	// kernels do not read it and it is not copied into any group;
	// UPDATE_WEIGHTS consults only GroupConfig.FixedInputWts.
	WithFixedWts bool

	// InTesting disables all STDP weight-change accumulation network-wide,
	// for round-trip / idempotence tests (spec section 8).
	InTesting bool

	// Decay holds the conductance decay/rise time constants shared by
	// every COBA group (dAMPA, dNMDA, rNMDA, sNMDA, dGABAa, dGABAb,
	// rGABAb, sGABAb in spec vocabulary).
	Decay chans.DecayParams

	// StdpScaleFactor is the cadence, in ms, at which UPDATE_WEIGHTS runs
	// (e.g. 10, 100, or 1000).
	StdpScaleFactor int32

	// WtChangeDecay is the optional soft multiplicative decay applied to
	// WtChange after each UPDATE_WEIGHTS pass (1 disables it).
	WtChangeDecay float32

	// PartitionBufSize is the fixed chunk width used by the static-load
	// partitioner (spec 4.1). The reference value is 128, matching the
	// per-block thread width of the accelerator this engine targets.
	PartitionBufSize int32

	// NWorkers is the number of goroutines in the per-Network worker
	// pool that the partitioner dispatches chunks across (spec 5's
	// "grid of blocks" realized as goroutines; reference value 64).
	NWorkers int
}

// DefaultConfig returns a Config with the reference parameter values
// used throughout spec section 8's literal scenarios.
func DefaultConfig() Config {
	c := Config{
		MaxDelay:         20,
		MaxSpikesD1:      100000,
		MaxSpikesD2:      500000,
		WithConductances: true,
		WithSTDP:         true,
		WithSTP:          true,
		WithHomeostasis:  false,
		StdpScaleFactor:  10,
		WtChangeDecay:    1,
		PartitionBufSize: 128,
		NWorkers:         64,
	}
	c.Decay.Defaults()
	return c
}

// GroupType is a bitmask of the per-group roles and synaptic targets
// spec section 6 lists under "Type".
type GroupType int32

const (
	// TargetAMPA marks the group's outgoing synapses as driving AMPA.
	TargetAMPA GroupType = 1 << iota
	// TargetNMDA marks the group's outgoing synapses as driving NMDA.
	TargetNMDA
	// TargetGABAa marks the group's outgoing synapses as driving GABAa.
	TargetGABAa
	// TargetGABAb marks the group's outgoing synapses as driving GABAb.
	TargetGABAb
	// TargetDA marks the group as dopaminergic: its outgoing spikes add
	// to the post-group's dopamine concentration (spec 4.3 step 1).
	TargetDA
	// Poisson marks the group as a Poisson-generator population rather
	// than regular Izhikevich neurons.
	Poisson
)

// Has reports whether t includes every bit set in mask.
func (t GroupType) Has(mask GroupType) bool { return t&mask == mask }

// STDPCurve selects the shape of the STDP weight-change curve (spec 4.2).
type STDPCurve int32

const (
	// ExpCurve is the standard exponential STDP curve, valid for E and I.
	ExpCurve STDPCurve = iota
	// TimingBasedCurve is the piecewise timing-based curve, E only.
	TimingBasedCurve
	// PulseCurve is the step-function curve gated by LAMBDA/DELTA, I only.
	PulseCurve
)

// STDPType selects whether a curve's output is scaled by dopamine.
type STDPType int32

const (
	// StandardSTDP applies the curve's output directly to WtChange.
	StandardSTDP STDPType = iota
	// DAModSTDP marks the curve as dopamine-modulated; UPDATE_WEIGHTS
	// multiplies the accumulated WtChange by the group's DA concentration.
	DAModSTDP
)

// STDPParams holds the per-sign (E or I) curve constants of spec 4.2.
type STDPParams struct {
	Curve STDPCurve
	Typ   STDPType

	// TauInv is 1/tau for the exponential curve (TAU_PLUS_INV_EXC etc).
	TauInv float32
	// Alpha is the exponential curve's amplitude (ALPHA_PLUS_EXC etc).
	Alpha float32

	// Gamma, Omega, Kappa parameterize the timing-based curve (E only).
	Gamma, Omega, Kappa float32

	// Lambda, Delta gate the pulse curve, BetaLTP/BetaLTD are its step
	// heights (I only).
	Lambda, Delta, BetaLTP, BetaLTD float32
}

// STPParams holds the short-term plasticity constants of spec 4.7.
type STPParams struct {
	U       float32 // STP_U
	A       float32 // STP_A
	TauUInv float32 // STP_tau_u_inv
	TauXInv float32 // STP_tau_x_inv
}

// HomeostasisParams holds the homeostatic scaling constants of spec 4.9.
type HomeostasisParams struct {
	Scale             float32 // homeostasisScale
	AvgTimeScale      float32 // avgTimeScale
	AvgTimeScaleDecay float32 // avgTimeScale_decay
	AvgTimeScaleInv   float32 // avgTimeScaleInv
	BaseFiring        float32 // baseFiring
}

// GroupConfig holds the per-group options of spec section 6.
type GroupConfig struct {
	Name string

	// StartN, NumN give the contiguous neuron-id range [StartN, StartN+NumN)
	// this group owns.
	StartN, NumN int32

	MaxDelay int32
	Type     GroupType

	WithSTDP    bool
	WithESTDP   bool
	WithISTDP   bool
	EParams     STDPParams
	IParams     STDPParams

	WithSTP bool
	STP     STPParams

	WithHomeostasis bool
	Homeo           HomeostasisParams

	// BaseDP, DecayDP are the dopamine baseline and decay-per-tick
	// constants of GROUP_STATE_UPDATE (spec 4.6).
	BaseDP, DecayDP float32

	// FixedInputWts, when true, excludes this group's outgoing synapses
	// from UPDATE_WEIGHTS entirely.
	FixedInputWts bool

	// IsSpikeGenerator marks a Poisson group whose spikes come from a
	// user-supplied bit vector rather than a rate draw (spec 4.2).
	IsSpikeGenerator bool

	// Noffset is the bit-vector offset used when reading the
	// user-supplied spike-generator bits for this group.
	Noffset int32

	// SpkCntBufPos indexes this group's slot in any external per-group
	// spike-count buffer (opaque to this engine; passed through).
	SpkCntBufPos int32
}
