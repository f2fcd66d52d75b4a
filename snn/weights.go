// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "math"

// UpdateWeights is UPDATE_WEIGHTS (spec 4.9), run every StdpScaleFactor
// ticks: consumes the WtChange accumulated by LTP/LTD since the last
// call, applies the group's homeostatic scaling and/or dopamine
// modulation, updates Wt, and clamps it to its sign-matched bound.
func (n *Network) UpdateWeights() {
	n.pool.dispatch(n.Partitions, func(c Chunk) {
		g := n.Groups[c.GroupID]
		if g.Cfg.Type.Has(Poisson) {
			return
		}
		for post := c.StartN; post < c.StartN+c.Size; post++ {
			n.updateWeightsFor(post, g)
		}
	})
}

func (n *Network) updateWeightsFor(post int32, postGroup *Group) {
	sy := n.Synapses
	base := sy.CumulativePre[post]
	npre := sy.Npre[post]
	for k := int32(0); k < npre; k++ {
		synIdx := base + k
		pre := sy.PreSynapticIds[synIdx]
		preGroup := n.groupFor(pre)
		if preGroup == nil || preGroup.Cfg.FixedInputWts {
			continue
		}

		eff := float32(n.Cfg.StdpScaleFactor) * sy.WtChange[synIdx]

		if params, ok := stdpParamsFor(&postGroup.Cfg, sy.IsExcitatory(synIdx)); ok && params.Typ == DAModSTDP {
			eff = postGroup.DA * eff
		}

		var delta float32
		if postGroup.Cfg.WithHomeostasis {
			h := postGroup.Cfg.Homeo
			diff := float32(1) - n.Neurons.AvgFiring[post]/h.BaseFiring
			factor := h.BaseFiring / h.AvgTimeScale / (1 + 50*float32(math.Abs(float64(diff))))
			delta = (diff*sy.Wt[synIdx]*h.Scale + eff) * factor
		} else {
			delta = eff
		}

		wt := sy.Wt[synIdx] + delta
		sy.WtChange[synIdx] *= n.Cfg.WtChangeDecay

		if sy.MaxSynWt[synIdx] > 0 {
			wt = Clamp(wt, 0, sy.MaxSynWt[synIdx])
		} else {
			wt = Clamp(wt, sy.MaxSynWt[synIdx], 0)
		}
		sy.Wt[synIdx] = wt
	}
}
