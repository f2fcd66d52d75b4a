// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import (
	"fmt"
	"sync/atomic"

	"github.com/c2h5oh/datasize"
)

// Network is the simulation context of spec section 9's "Ownership"
// note: every array a tick touches is owned here, and kernels operate
// on non-owning views into it. It plays the role leabra.Network plays
// for the teacher's layer-sequenced update, generalized from "layers
// with forward/back passes" to "groups with a fixed 7-kernel tick".
type Network struct {
	Cfg Config

	Neurons  *Neurons
	Synapses *Synapses
	Groups   []*Group

	FiringD1 *FiringTable
	FiringD2 *FiringTable

	ISet *ISet

	// StpU, StpX are the STP ring buffers, sized NumNReg*(MaxDelay+1) and
	// indexed by neuron*(MaxDelay+1) + (simTime mod (MaxDelay+1)), per
	// spec 4.7.
	StpU []float32
	StpX []float32

	// Rates is the Poisson firing-rate table for generator neurons
	// (indexed by neuron id - NumNReg), consumed by FIND_FIRING for
	// groups that are Poisson but not IsSpikeGenerator.
	Rates []float32
	Rng   PoissonSource

	Partitions []Chunk
	pool       *workPool

	// SimTime is the current tick, counting up from 0; it is never
	// reset. The kernels use SimTime mod 1000 as the millisecond within
	// the current second.
	SimTime int32

	// stpPlus, stpMinus are this tick's STP ring-buffer cursors,
	// computed once by STP_AND_DECAY and reused by FIND_FIRING's firing
	// augmentation and CONDUCTANCE_UPDATE's STP-scaled weight read.
	stpPlus, stpMinus int32

	// spikeCountD1Sec, spikeCountD2Sec count this second's spikes so far,
	// incremented atomically by flushFired as each chunk's fired neurons
	// are reserved into FiringD1/FiringD2; spikeCountD1, spikeCountD2 are
	// the lifetime totals accumulated at each second boundary (spec 4.8).
	spikeCountD1Sec, spikeCountD2Sec int32
	spikeCountD1, spikeCountD2       int32

	tickErr atomic.Pointer[TickError]
}

// NewNetwork allocates a Network's state from cfg and the group list,
// but does not populate connectivity (Synapses' *Ids/Cumulative*
// arrays) -- that is the external network builder's job.
// sy is the connectivity and initial synaptic state built by the
// external network builder (spec section 6); NewNetwork takes
// ownership of it but never invents or validates connectivity itself.
func NewNetwork(cfg Config, groups []GroupConfig, sy *Synapses) *Network {
	n := &Network{Cfg: cfg}
	n.Neurons = NewNeurons(cfg.NumNReg)
	for i := range n.Neurons.Chans {
		n.Neurons.Chans[i].NMDARise = cfg.WithNMDARise
		n.Neurons.Chans[i].GABAbRise = cfg.WithGABAbRise
	}
	if sy == nil {
		sy = NewSynapses(0)
	}
	n.Synapses = sy
	n.Groups = make([]*Group, len(groups))
	for i, g := range groups {
		n.Groups[i] = NewGroup(g)
	}
	n.FiringD1 = NewFiringTable(cfg.MaxSpikesD1, cfg.MaxDelay)
	n.FiringD2 = NewFiringTable(cfg.MaxSpikesD2, cfg.MaxDelay)
	n.ISet = NewISet(int32((cfg.MaxNumPreSynN+31)/32), cfg.NumNReg)
	n.StpU = make([]float32, int64(cfg.NumNReg)*int64(cfg.MaxDelay+1))
	n.StpX = make([]float32, int64(cfg.NumNReg)*int64(cfg.MaxDelay+1))
	for i := range n.StpX {
		n.StpX[i] = 1
	}
	n.Rates = make([]float32, cfg.NumNPois)
	n.Rng = NewMathRandSource(1, 1)
	n.Partitions = BuildPartitions(groups, cfg.PartitionBufSize)
	n.pool = startWorkPool(cfg.NWorkers)
	return n
}

// Close stops the network's worker pool. A Network must not be used
// after Close.
func (n *Network) Close() {
	n.pool.stop()
}

// SizeReport returns a human-readable summary of the network's memory
// footprint, in the style of leabra.Network.SizeReport.
func (n *Network) SizeReport() string {
	var total uint64
	total += uint64(len(n.Neurons.Voltage)) * 4 * 8
	total += uint64(len(n.Synapses.Wt)) * 4 * 4
	total += uint64(len(n.ISet.words)) * 4
	total += uint64(len(n.FiringD1.Table)+len(n.FiringD2.Table)) * 4
	return fmt.Sprintf("%d neurons, %d synapses, %s total",
		n.Neurons.N(), n.Synapses.NumSynapses(), datasize.ByteSize(total).HumanReadable())
}

// setErr records the first fatal error a tick's kernels encounter. Only
// the first call wins; later calls are no-ops, matching the "sticky
// error code" of spec section 7 -- the tick aborts as a whole, so which
// block discovered the error second does not matter.
func (n *Network) setErr(code ErrCode, groupID int32) {
	e := &TickError{Code: code, SimTime: n.SimTime, GroupID: groupID}
	n.tickErr.CompareAndSwap(nil, e)
}

// groupFor returns the group owning neuron id, or nil if id does not
// resolve to a known group -- the consistency check behind
// ErrCurrentUpdateGroupUnknown.
func (n *Network) groupFor(id int32) *Group {
	if id < 0 || int(id) >= len(n.Synapses.GrpIds) {
		return nil
	}
	gid := n.Synapses.GrpIds[id]
	if gid < 0 || int(gid) >= len(n.Groups) {
		return nil
	}
	return n.Groups[gid]
}

// groupIDFor returns the group index owning neuron id, or -1.
func (n *Network) groupIDFor(id int32) int32 {
	if id < 0 || int(id) >= len(n.Synapses.GrpIds) {
		return -1
	}
	return n.Synapses.GrpIds[id]
}

// Tick runs one simulated millisecond: the seven per-ms kernels of
// spec section 2/4, in their fixed order, each separated by the
// implicit host barrier of spec section 5 (workPool.dispatch already
// blocks until every chunk of a kernel completes before Tick moves
// on). SPIKE_GEN itself is the one external kernel (host-side, out of
// scope): callers populate Rates and/or each Poisson group's
// spike-generator bits before calling Tick. The two cadence kernels
// (SecondBoundary every 1000 ticks, UpdateWeights every StdpScaleFactor
// ticks) are not run here -- a Runner sequences those at their own
// cadence, the way spec section 2 describes them as separate from the
// per-tick kernel set.
func (n *Network) Tick() error {
	n.tickErr.Store(nil)

	n.stpAndDecay()
	n.findFiring()
	n.updateTimeTable()
	n.currentUpdateD2()
	n.currentUpdateD1()
	n.conductanceUpdate()
	n.neuronStateUpdate()
	n.groupStateUpdate()

	n.SimTime++

	if e := n.tickErr.Load(); e != nil {
		return e
	}
	return nil
}
