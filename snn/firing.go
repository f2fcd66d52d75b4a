// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "sync/atomic"

// findFiring is FIND_FIRING (spec 4.2): per neuron in its partition
// chunk, decide whether it fired this tick, record the spike into the
// appropriate firing table, reset regular neurons that fired, and run
// the LTP half of STDP for every synapse feeding a neuron that fired.
//
// The reference design batches fired ids into a shared 512-entry
// per-block buffer before flushing to the global firing tables; this
// implementation instead collects fired ids per chunk (naturally
// bounded by PartitionBufSize) and flushes once at the end of the
// chunk, which is behaviorally equivalent -- every fired id still ends
// up reserved and written exactly once, in chunk order.
func (n *Network) findFiring() {
	n.pool.dispatch(n.Partitions, func(c Chunk) {
		g := n.Groups[c.GroupID]
		var fired []int32
		for id := c.StartN; id < c.StartN+c.Size; id++ {
			if n.neuronFires(id, g) {
				fired = append(fired, id)
			}
		}
		if len(fired) == 0 {
			return
		}
		n.flushFired(fired, g)
	})
}

// neuronFires applies the three firing rules of spec 4.2, selected by
// the owning group's type.
func (n *Network) neuronFires(id int32, g *Group) bool {
	if g.Cfg.Type.Has(Poisson) {
		if g.Cfg.IsSpikeGenerator {
			local := id - g.Cfg.StartN + g.Cfg.Noffset
			return g.SpikeGenBit(local)
		}
		rateIdx := id - n.Cfg.NumNReg
		return Fires(n.Rng, n.Rates[rateIdx])
	}
	return n.Neurons.Voltage[id] >= 30
}

// flushFired reserves table space for fired, records the ids, resets
// regular neurons, and runs LTP for each, per spec 4.2. A successful
// reservation also counts toward this second's spikeCountD{1,2}Sec
// (spec 4.8's per-second counters, rolled into the lifetime totals at
// the next SecondBoundary) -- fired chunks are flushed concurrently
// across the dispatch pool, so the counter is incremented atomically.
func (n *Network) flushFired(fired []int32, g *Group) {
	table := n.FiringD2
	counter := &n.spikeCountD2Sec
	if g.Cfg.MaxDelay == 1 {
		table = n.FiringD1
		counter = &n.spikeCountD1Sec
	}
	start, ok := table.Reserve(int32(len(fired)))
	if !ok {
		if table == n.FiringD1 {
			n.setErr(ErrFireUpdateOverflowD1, int32(indexOf(n.Groups, g)))
		} else {
			n.setErr(ErrFireUpdateOverflowD2, int32(indexOf(n.Groups, g)))
		}
		return
	}
	atomic.AddInt32(counter, int32(len(fired)))
	for i, id := range fired {
		table.Table[start+int32(i)] = id

		if g.Cfg.Type.Has(Poisson) {
			continue
		}
		n.Neurons.NSpikeCnt[id]++
		n.Neurons.Voltage[id] = n.Neurons.IzhC[id]
		n.Neurons.Recovery[id] += n.Neurons.IzhD[id]
		if g.Cfg.WithSTDP {
			n.Neurons.LastSpikeTime[id] = n.SimTime
		}
		if g.Cfg.WithHomeostasis {
			n.Neurons.AvgFiring[id]++
		}
		if g.Cfg.WithSTP {
			n.fireStp(id, g)
		}
		n.runLTP(id, g)
	}
}

// runLTP walks post-neuron id's presynaptic slots and, for every
// synapse whose last recorded arrival is no later than this tick, adds
// an STDP potentiation increment to WtChange -- the LTP half of spec
// 4.2.
func (n *Network) runLTP(post int32, g *Group) {
	if !g.Cfg.WithSTDP || n.Cfg.InTesting {
		return
	}
	sy := n.Synapses
	base := sy.CumulativePre[post]
	npre := sy.Npre[post]
	for k := int32(0); k < npre; k++ {
		p := base + k
		if sy.SynSpikeTime[p] < 0 || sy.SynSpikeTime[p] > n.SimTime {
			continue
		}
		params, ok := stdpParamsFor(&g.Cfg, sy.IsExcitatory(p))
		if !ok {
			continue
		}
		deltaT := float32(n.SimTime - sy.SynSpikeTime[p])
		sy.WtChange[p] += STDPCurveValue(params, deltaT)
	}
}

// indexOf returns g's position in groups, or -1.
func indexOf(groups []*Group, g *Group) int {
	for i, gg := range groups {
		if gg == g {
			return i
		}
	}
	return -1
}
