// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import (
	"fmt"

	"github.com/emer/snn/chans"
)

//gosl: start neuron

// Neurons holds the per-neuron state of spec section 3, struct-of-arrays
// style (generalizing leabra.Neuron's array-of-structs layout to match
// the flat array-indexed notation spec.md itself uses, and to let a
// future accelerator backend bind each slice directly to a device
// buffer). Every slice is sized NumNReg; Poisson generators (ids
// [NumNReg, NumNReg+NumNPois)) carry no per-neuron integration state of
// their own.
type Neurons struct {
	Voltage    []float32
	Recovery   []float32
	Current    []float32
	ExtCurrent []float32

	Chans []chans.SynChans // conductance channels, one per regular neuron

	// AvgFiring is the homeostatic running-average firing rate.
	AvgFiring []float32

	// LastSpikeTime is the tick of this neuron's most recent spike, used
	// by STDP's Delta-t computation. -1 before any spike.
	LastSpikeTime []int32

	// NSpikeCnt is the lifetime spike count.
	NSpikeCnt []int32

	// IzhA, IzhB, IzhC, IzhD are the per-neuron Izhikevich parameters,
	// consumed (read-only) from the network builder.
	IzhA, IzhB, IzhC, IzhD []float32
}

//gosl: end neuron

// NewNeurons allocates a Neurons block for n regular neurons, with
// LastSpikeTime initialized to -1 (no prior spike) as STDP's Delta-t
// computation requires.
func NewNeurons(n int32) *Neurons {
	nr := &Neurons{
		Voltage:       make([]float32, n),
		Recovery:      make([]float32, n),
		Current:       make([]float32, n),
		ExtCurrent:    make([]float32, n),
		Chans:         make([]chans.SynChans, n),
		AvgFiring:     make([]float32, n),
		LastSpikeTime: make([]int32, n),
		NSpikeCnt:     make([]int32, n),
		IzhA:          make([]float32, n),
		IzhB:          make([]float32, n),
		IzhC:          make([]float32, n),
		IzhD:          make([]float32, n),
	}
	for i := range nr.LastSpikeTime {
		nr.LastSpikeTime[i] = -1
	}
	return nr
}

// N returns the number of regular neurons this block holds state for.
func (nr *Neurons) N() int32 { return int32(len(nr.Voltage)) }

// NeuronVars names the per-neuron variables exposed through
// VarByIndex/VarByName, for an external spike monitor (out of scope
// here) to pull named state out of the flat arrays, mirroring
// leabra.Neuron's VarNames/VarByIndex/VarByName introspection idiom.
var NeuronVars = []string{"Voltage", "Recovery", "Current", "ExtCurrent", "AvgFiring"}

// NeuronVarsMap maps a NeuronVars name to its VarByIndex position,
// built once at init the way leabra.NeuronVarsMap is.
var NeuronVarsMap map[string]int

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

// VarByIndex returns the named variable (by NeuronVars position) for
// neuron n.
func (nr *Neurons) VarByIndex(idx int, n int32) (float32, error) {
	switch idx {
	case 0:
		return nr.Voltage[n], nil
	case 1:
		return nr.Recovery[n], nil
	case 2:
		return nr.Current[n], nil
	case 3:
		return nr.ExtCurrent[n], nil
	case 4:
		return nr.AvgFiring[n], nil
	default:
		return 0, fmt.Errorf("neuron.VarByIndex: index %d out of range", idx)
	}
}

// VarByName returns the named variable for neuron n, or an error if
// varNm is not in NeuronVars.
func (nr *Neurons) VarByName(varNm string, n int32) (float32, error) {
	idx, ok := NeuronVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("neuron.VarByName: variable name %q not valid", varNm)
	}
	return nr.VarByIndex(idx, n)
}

// SetDefaultIzh sets IzhA/B/C/D for neuron n to the regular-spiking
// Izhikevich parameter set (a, b, c, d) = (0.02, 0.2, -65, 8), the
// literal values of spec section 8 scenario 1.
func (nr *Neurons) SetDefaultIzh(n int32) {
	nr.IzhA[n] = 0.02
	nr.IzhB[n] = 0.2
	nr.IzhC[n] = -65
	nr.IzhD[n] = 8
}
