// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// spikeRange returns the [start, end) slice of a firing table's Table
// holding the neuron ids that fired delay ms before the current tick,
// using the convention "TimeTable[ms+maxDelay+1] - TimeTable[ms+maxDelay]
// is the spike count for tick ms" (spec section 3, 4.2): the carried-over
// pre-second region (ms in [-maxDelay, -1]) is populated by the previous
// second's SecondBoundary compaction, so this lookup needs no special
// case at a second boundary.
func (n *Network) spikeRange(ft *FiringTable, delay int32) (start, end int32) {
	ms := n.SimTime % 1000
	targetMs := ms - delay
	base := targetMs + n.Cfg.MaxDelay
	return ft.TimeTable[base], ft.TimeTable[base+1]
}

// currentUpdateD1 is CURRENT_UPDATE_D1 (spec 4.3): delivers every spike
// recorded one tick ago to its unit-delay targets.
func (n *Network) currentUpdateD1() {
	start, end := n.spikeRange(n.FiringD1, 1)
	for i := start; i < end; i++ {
		n.deliverFrom(n.FiringD1.Table[i], 1)
	}
}

// currentUpdateD2 is CURRENT_UPDATE_D2 (spec 4.3): for every delay
// value in [1, maxDelay], delivers the spikes recorded that many ticks
// ago to their delay-specific targets.
func (n *Network) currentUpdateD2() {
	for d := int32(1); d <= n.Cfg.MaxDelay; d++ {
		start, end := n.spikeRange(n.FiringD2, d)
		for i := start; i < end; i++ {
			n.deliverFrom(n.FiringD2.Table[i], d)
		}
	}
}

// deliverFrom delivers presynaptic neuron pre's spike to every target
// it has at the given delay, per spec 4.3's four per-delivery steps.
func (n *Network) deliverFrom(pre int32, delay int32) {
	sy := n.Synapses
	preGroup := n.groupFor(pre)
	dr := sy.PostDelayInfo[pre*(n.Cfg.MaxDelay+1)+delay]
	for j := dr.Start; j < dr.Start+dr.Length; j++ {
		psid := sy.PostSynapticIds[j]
		post := psid.Post
		slot := psid.PreSynSlot

		postGroup := n.groupFor(post)
		if postGroup == nil {
			n.setErr(ErrCurrentUpdateGroupUnknown, n.groupIDFor(post))
			continue
		}

		if preGroup != nil && preGroup.Cfg.Type.Has(TargetDA) {
			postGroup.AddDA(0.04)
		}

		n.ISet.AtomicOrBit(slot, post)

		synIdx := sy.CumulativePre[post] + slot
		sy.SynSpikeTime[synIdx] = n.SimTime

		if postGroup.Cfg.WithSTDP && !n.Cfg.InTesting && post < n.Cfg.NumNReg {
			deltaT := n.SimTime - n.Neurons.LastSpikeTime[post]
			if deltaT >= 0 {
				if params, ok := stdpParamsFor(&postGroup.Cfg, sy.IsExcitatory(synIdx)); ok {
					sy.WtChange[synIdx] -= STDPCurveValue(params, float32(deltaT))
				}
			}
		}
	}
}
