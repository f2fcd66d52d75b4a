// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

// Runner sequences a Network's tick loop: it calls Tick, then runs
// UpdateWeights every StdpScaleFactor ticks and SecondBoundary every
// 1000 ticks. It plays the role the teacher's looper.Stacks
// plays for the alpha-cycle sequencer, generalized from "stack of named
// training loops with pause/stop callbacks" down to the one cadence
// this engine's tick actually needs, with no GUI or logging dependency
// threaded through it.
type Runner struct {
	Net *Network

	// TicksRun is the number of ticks this Runner has executed.
	TicksRun int64
}

// NewRunner returns a Runner driving net.
func NewRunner(net *Network) *Runner {
	return &Runner{Net: net}
}

// Step runs exactly one tick, followed by UpdateWeights and
// SecondBoundary if this tick's new SimTime lands on their cadence. A
// Tick error is returned immediately, before either cadence kernel
// runs, since spec section 7 treats an erroring tick as corrupt and
// indivisible.
func (r *Runner) Step() error {
	if err := r.Net.Tick(); err != nil {
		return err
	}
	r.TicksRun++

	if sf := r.Net.Cfg.StdpScaleFactor; sf > 0 && r.Net.SimTime%sf == 0 {
		r.Net.UpdateWeights()
	}
	if r.Net.SimTime%1000 == 0 {
		r.Net.SecondBoundary()
	}
	return nil
}

// Run calls Step n times, stopping at the first error.
func (r *Runner) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := r.Step(); err != nil {
			return err
		}
	}
	return nil
}
