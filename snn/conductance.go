// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// conductanceUpdate is CONDUCTANCE_UPDATE (spec 4.4): for each regular
// post-neuron, drain every nonzero I_set word row, distributing each
// arrived synapse's (STP-scaled) weight into the post-neuron's
// conductance channels (COBA) or current (CUBA), then clear the word.
// Scanning is single-threaded per post-neuron, so clearing a word it
// just read is race-free even though CURRENT_UPDATE_D1/D2 set those
// bits from many goroutines concurrently (spec 4.4, 9).
func (n *Network) conductanceUpdate() {
	n.pool.dispatch(n.Partitions, func(c Chunk) {
		g := n.Groups[c.GroupID]
		if g.Cfg.Type.Has(Poisson) {
			return
		}
		for post := c.StartN; post < c.StartN+c.Size; post++ {
			n.drainPostNeuron(post)
		}
	})
}

func (n *Network) drainPostNeuron(post int32) {
	sy := n.Synapses
	base := sy.CumulativePre[post]
	for j := int32(0); j < n.ISet.Rows(); j++ {
		w := n.ISet.Word(j, post)
		if w == 0 {
			continue
		}
		ForEachSetBit(w, func(bit int) {
			slot := j*32 + int32(bit)
			n.deliverConductance(post, base+slot, slot)
		})
		n.ISet.ClearWord(j, post)
	}
}

func (n *Network) deliverConductance(post, synIdx, slot int32) {
	sy := n.Synapses
	pre := sy.PreSynapticIds[synIdx]
	preGroup := n.groupFor(pre)
	if preGroup == nil {
		return
	}
	wSyn := sy.Wt[synIdx]

	if preGroup.Cfg.WithSTP {
		// Per spec's Design Notes: delay compensation (tD) for the STP
		// ring-buffer read is an acknowledged implementer degree of
		// freedom when per-synapse delay isn't threaded through; this
		// engine preserves the reference's tD=0 behavior rather than
		// inventing a per-synapse delay lookup.
		stride := n.Cfg.MaxDelay + 1
		preBase := pre * stride
		wSyn *= preGroup.Cfg.STP.A * n.StpX[preBase+n.stpMinus] * n.StpU[preBase+n.stpPlus]
	}

	connID := sy.ConnIdsPreIdx[synIdx]

	if !n.Cfg.WithConductances {
		n.Neurons.Current[post] += wSyn
		return
	}

	fast := sy.MulSynFast[connID]
	slow := sy.MulSynSlow[connID]
	ch := &n.Neurons.Chans[post]
	t := preGroup.Cfg.Type
	if t.Has(TargetAMPA) {
		ch.AMPA += wSyn * fast
	}
	if t.Has(TargetNMDA) {
		ch.AddNMDA(&n.Cfg.Decay, wSyn*slow)
	}
	if t.Has(TargetGABAa) {
		ch.GABAa += wSyn * fast
	}
	if t.Has(TargetGABAb) {
		ch.AddGABAb(&n.Cfg.Decay, wSyn*slow)
	}
}
