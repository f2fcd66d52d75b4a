// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// stpAndDecay is STP_AND_DECAY (spec 4.7): per-neuron conductance decay
// for COBA neurons, plus the STP ring-buffer carry-forward for neurons
// in an STP-enabled group. It runs first in the tick, before any of
// this tick's new synaptic input is accumulated.
func (n *Network) stpAndDecay() {
	maxDelay := n.Cfg.MaxDelay
	n.stpPlus = n.SimTime % (maxDelay + 1)
	n.stpMinus = ((n.SimTime - 1) % (maxDelay + 1))
	if n.stpMinus < 0 {
		n.stpMinus += maxDelay + 1
	}

	n.pool.dispatch(n.Partitions, func(c Chunk) {
		g := n.Groups[c.GroupID]
		if g.Cfg.Type.Has(Poisson) {
			return
		}
		for id := c.StartN; id < c.StartN+c.Size; id++ {
			if n.Cfg.WithConductances {
				n.Cfg.Decay.Decay(&n.Neurons.Chans[id])
			}
			if g.Cfg.WithSTP {
				n.decayStp(id)
			}
		}
	})
}

// decayStp carries neuron id's STP ring-buffer state from stpMinus
// forward into stpPlus, per spec 4.7:
//
//	stpu[plus] = stpu[minus] * (1 - STP_tau_u_inv)
//	stpx[plus] = stpx[minus] + (1 - stpx[minus]) * STP_tau_x_inv
func (n *Network) decayStp(id int32) {
	g := n.groupFor(id)
	stride := n.Cfg.MaxDelay + 1
	base := id * stride
	u := n.StpU[base+n.stpMinus]
	x := n.StpX[base+n.stpMinus]
	n.StpU[base+n.stpPlus] = u * (1 - g.Cfg.STP.TauUInv)
	n.StpX[base+n.stpPlus] = x + (1-x)*g.Cfg.STP.TauXInv
}

// fireStp augments the STP ring buffer for a neuron that just fired,
// per spec 4.7:
//
//	stpu[plus] += STP_U * (1 - stpu[minus])
//	stpx[plus] -= stpu[plus] * stpx[minus]
func (n *Network) fireStp(id int32, g *Group) {
	stride := n.Cfg.MaxDelay + 1
	base := id * stride
	u := n.StpU[base+n.stpPlus] + g.Cfg.STP.U*(1-n.StpU[base+n.stpMinus])
	n.StpU[base+n.stpPlus] = u
	n.StpX[base+n.stpPlus] -= u * n.StpX[base+n.stpMinus]
}
