// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// condIntegrationScale is the number of Izhikevich sub-steps taken per
// simulated millisecond (spec 4.5's "COND_INTEGRATION_SCALE"). The
// spec leaves the exact value an implementer degree of freedom; 2
// half-ms sub-steps is the standard choice for numerically stable
// Izhikevich integration and is what this engine uses throughout.
const condIntegrationScale = 2

// neuronStateUpdate is NEURON_STATE_UPDATE (spec 4.5): integrates the
// Izhikevich voltage/recovery pair for every regular neuron, driven by
// either the COBA conductances or the CUBA current accumulated by
// CONDUCTANCE_UPDATE, clamping voltage to [-90, 30].
func (n *Network) neuronStateUpdate() {
	n.pool.dispatch(n.Partitions, func(c Chunk) {
		g := n.Groups[c.GroupID]
		if g.Cfg.Type.Has(Poisson) {
			return
		}
		for id := c.StartN; id < c.StartN+c.Size; id++ {
			n.integrateNeuron(id, g)
		}
	})
}

func (n *Network) integrateNeuron(id int32, g *Group) {
	nr := n.Neurons
	v := nr.Voltage[id]
	u := nr.Recovery[id]
	a := nr.IzhA[id]
	b := nr.IzhB[id]
	ext := nr.ExtCurrent[id]

	var gAMPA, gGABAa, gN, gGb float32
	if n.Cfg.WithConductances {
		ch := &nr.Chans[id]
		gAMPA = ch.AMPA
		gGABAa = ch.GABAa
		gN = ch.NMDAEff()
		gGb = ch.GABAbEff()
	}
	cur := nr.Current[id]

	var I float32
	for s := 0; s < condIntegrationScale; s++ {
		if n.Cfg.WithConductances {
			nmdaTmp := (v + 80) / 60
			nmdaTmp *= nmdaTmp
			I = -(gAMPA*v + gN*nmdaTmp/(1+nmdaTmp)*v + gGABAa*(v+70) + gGb*(v+90))
		} else {
			I = cur
		}
		v += ((0.04*v+5)*v + 140 - u + I + ext) / condIntegrationScale
		u += a * (b*v - u) / condIntegrationScale
		if v > 30 {
			v = 30
			break
		}
		if v < -90 {
			v = -90
		}
	}

	nr.Voltage[id] = v
	nr.Recovery[id] = u
	if n.Cfg.WithConductances {
		nr.Current[id] = I
	} else {
		nr.Current[id] = 0
	}
	if g.Cfg.WithHomeostasis {
		nr.AvgFiring[id] *= g.Cfg.Homeo.AvgTimeScaleDecay
	}
}

// groupStateUpdate is GROUP_STATE_UPDATE (spec 4.6): decays each
// group's dopamine concentration toward its baseline and logs it into
// the per-ms circular buffer.
func (n *Network) groupStateUpdate() {
	for _, g := range n.Groups {
		g.DecayDA()
		g.LogDA(n.SimTime)
	}
}
