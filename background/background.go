// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - dispatch and shutdown for long-running processes
package background

// Process - the interface for a background process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - the list of processes to start
type Processes []Process

// T - handle for the started set, needed to stop it again
type T struct {
	shutdown chan struct{}
	finished []chan struct{}
}

// Start - run each process in its own goroutine
//
// the shutdown channel is closed to request termination, each
// process must return from Run promptly when that happens
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
		finished: make([]chan struct{}, len(processes)),
	}

	for i, p := range processes {
		finished := make(chan struct{})
		register.finished[i] = finished
		go func(p Process, finished chan struct{}) {
			p.Run(args, register.shutdown)
			close(finished)
		}(p, finished)
	}
	return register
}

// Stop - shut down all background processes and wait for them
//
// only the first call has any effect
func (t *T) Stop() {
	if nil == t {
		return
	}

	select {
	case <-t.shutdown:
		// already stopped
		return
	default:
		close(t.shutdown)
	}

	for _, finished := range t.finished {
		<-finished
	}
}
