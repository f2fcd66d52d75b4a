// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

import "sync"

// workPool is the fixed goroutine pool a Network dispatches partition
// chunks across. It plays the role the teacher's NetworkStru.ThrChans /
// ThrWorker / WaitGp play for per-layer threaded dispatch
// (leabra.NetworkStru.ThrLayFun), generalized here from "one goroutine
// per layer" to "one goroutine per partition chunk" -- the accelerator's
// grid-of-blocks model realized with goroutines instead of a literal
// kernel launch (spec section 5).
type workPool struct {
	chans []chan func()
	wg    sync.WaitGroup
}

// startWorkPool launches n worker goroutines, each draining its own
// channel in FIFO order, mirroring NetworkStru.StartThreads.
func startWorkPool(n int) *workPool {
	if n < 1 {
		n = 1
	}
	wp := &workPool{chans: make([]chan func(), n)}
	for i := range wp.chans {
		wp.chans[i] = make(chan func(), 1)
		go wp.worker(i)
	}
	return wp
}

func (wp *workPool) worker(idx int) {
	for fn := range wp.chans[idx] {
		fn()
		wp.wg.Done()
	}
}

// stop closes every worker channel, mirroring NetworkStru.StopThreads.
func (wp *workPool) stop() {
	for _, ch := range wp.chans {
		close(ch)
	}
}

// dispatch runs fn once per chunk, across the pool, and blocks until
// every chunk has completed -- the implicit host barrier spec section 5
// describes between kernels. With a single worker it just runs fn
// inline in chunk order, the same short-circuit NetworkStru.ThrLayFun
// takes when NThreads <= 1.
func (wp *workPool) dispatch(chunks []Chunk, fn func(Chunk)) {
	if len(wp.chans) <= 1 {
		for _, c := range chunks {
			fn(c)
		}
		return
	}
	for i, c := range chunks {
		c := c
		wp.wg.Add(1)
		wp.chans[i%len(wp.chans)] <- func() { fn(c) }
	}
	wp.wg.Wait()
}
