// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "fmt"

//gosl: start synapse

// PostSynId is one entry of postSynapticIds: it names the post-synaptic
// neuron and the presynaptic slot (within that neuron's receive list)
// that a given pre-ordered synapse delivers into, per spec section 3:
// "postSynapticIds[cumulativePost[pre]+j] yields (post, presyn-slot)".
type PostSynId struct {
	Post      int32
	PreSynSlot int32
}

// DelayRange is one entry of postDelayInfo: the contiguous slice of
// postSynapticIds, [Start, Start+Length), containing exactly the
// targets of one presynaptic neuron at one delay value (spec section 3).
type DelayRange struct {
	Start  int32
	Length int32
}

// Synapses holds the full connectivity and mutable synaptic state of
// the network, in the two index spaces spec section 3 defines:
//
//   - the post-ordered space (size = total synapse count), addressed by
//     CumulativePre[post]+k for k in [0, Npre[post)); PreSynapticIds,
//     Wt, WtChange, MaxSynWt and SynSpikeTime all live in this space.
//   - the pre-ordered space (same total size), addressed by
//     CumulativePost[pre]+j for j in [0, Npost[pre)); PostSynapticIds
//     lives here, and together with PostDelayInfo it is how
//     CURRENT_UPDATE_D1/D2 walk a firing neuron's targets by delay.
//     FIND_FIRING's LTP pass walks the post-ordered space instead.
//
// All of the *Ids, Cumulative*, *DelayInfo, GrpIds, ConnIdsPreIdx,
// MulSynFast and MulSynSlow arrays are consumed, immutable arrays from
// the external network builder (spec section 6); Wt, WtChange,
// MaxSynWt and SynSpikeTime are the state this engine mutates.
type Synapses struct {
	// Npre, CumulativePre: per-post-neuron receive-connection count and
	// prefix sum, CumulativePre[n+1] = CumulativePre[n] + Npre[n].
	Npre          []int32
	CumulativePre []int32

	// Npost, CumulativePost: per-pre-neuron send-connection count and
	// prefix sum, CumulativePost[n+1] = CumulativePost[n] + Npost[n].
	Npost          []int32
	CumulativePost []int32

	// PreSynapticIds, indexed by post-ordered slot, gives the source
	// neuron id of that synapse.
	PreSynapticIds []int32

	// PostSynapticIds, indexed by pre-ordered slot, gives (post,
	// presyn-slot) of that synapse.
	PostSynapticIds []PostSynId

	// PostDelayInfo, indexed by pre*(maxDelay+1)+d, gives the
	// PostSynapticIds sub-range of pre's targets at delay d.
	PostDelayInfo []DelayRange

	// GrpIds maps a neuron id to its owning group's index.
	GrpIds []int32

	// ConnIdsPreIdx, indexed by post-ordered slot, gives the connection
	// id used to look up MulSynFast/MulSynSlow.
	ConnIdsPreIdx []int32

	// MulSynFast, MulSynSlow, indexed by connection id, scale a
	// connection's contribution to the fast (AMPA/GABAa) and slow
	// (NMDA/GABAb) channels in CONDUCTANCE_UPDATE.
	MulSynFast []float32
	MulSynSlow []float32

	// Wt is the signed synaptic weight; sign encodes excitatory (+) or
	// inhibitory (-).
	Wt []float32

	// WtChange is the accumulated weight derivative, written by LTP
	// (FIND_FIRING) and LTD (CURRENT_UPDATE_D1/D2), consumed and reset
	// (decayed) by UPDATE_WEIGHTS.
	WtChange []float32

	// MaxSynWt is the sign-matched saturation bound for Wt.
	MaxSynWt []float32

	// SynSpikeTime is the tick of this synapse's last spike arrival, -1
	// before any arrival.
	SynSpikeTime []int32
}

//gosl: end synapse

// NumSynapses returns the total synapse count (the common length of the
// post-ordered arrays).
func (sy *Synapses) NumSynapses() int32 { return int32(len(sy.Wt)) }

// NewSynapses allocates the mutable per-synapse state (Wt, WtChange,
// MaxSynWt, SynSpikeTime) for nSyn synapses; the connectivity arrays
// (Npre, PreSynapticIds, etc.) are populated by the caller from the
// external network builder's output, since this engine never invents
// connectivity.
func NewSynapses(nSyn int32) *Synapses {
	sy := &Synapses{
		Wt:           make([]float32, nSyn),
		WtChange:     make([]float32, nSyn),
		MaxSynWt:     make([]float32, nSyn),
		SynSpikeTime: make([]int32, nSyn),
	}
	for i := range sy.SynSpikeTime {
		sy.SynSpikeTime[i] = -1
	}
	return sy
}

// SynapseVars names the per-synapse variables exposed through
// VarByIndex/VarByName, mirroring leabra.Synapse's
// VarNames/VarByIndex/VarByName.
var SynapseVars = []string{"Wt", "WtChange", "MaxSynWt"}

// SynapseVarsMap maps a SynapseVars name to its VarByIndex position,
// built once at init the way leabra.SynapseVarsMap is.
var SynapseVarsMap map[string]int

func init() {
	SynapseVarsMap = make(map[string]int, len(SynapseVars))
	for i, v := range SynapseVars {
		SynapseVarsMap[v] = i
	}
}

// VarByIndex returns the named variable (by SynapseVars position) for
// post-ordered synapse slot s.
func (sy *Synapses) VarByIndex(idx int, s int32) (float32, error) {
	switch idx {
	case 0:
		return sy.Wt[s], nil
	case 1:
		return sy.WtChange[s], nil
	case 2:
		return sy.MaxSynWt[s], nil
	default:
		return 0, fmt.Errorf("synapse.VarByIndex: index %d out of range", idx)
	}
}

// VarByName returns the named variable for post-ordered synapse slot
// s, or an error if varNm is not in SynapseVars.
func (sy *Synapses) VarByName(varNm string, s int32) (float32, error) {
	idx, ok := SynapseVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("synapse.VarByName: variable name %q not valid", varNm)
	}
	return sy.VarByIndex(idx, s)
}

// IsExcitatory reports whether synapse s is excitatory, per the
// invariant sign(Wt[s]) == sign(MaxSynWt[s]).
func (sy *Synapses) IsExcitatory(s int32) bool { return sy.MaxSynWt[s] > 0 }
