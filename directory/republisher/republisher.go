// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package republisher - the periodic re-announcement process
//
// network copies of a published offer expire after their TTL, so the
// whole local directory is re-announced on a period comfortably
// inside that TTL
package republisher

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerd/offer"
)

// InitialDelay - pause before the very first pass
//
// long enough for the just-bootstrapped session to settle, short
// enough that restored offers reappear almost immediately
const InitialDelay = 500 * time.Millisecond

// Republisher - a background.Process re-announcing the directory
type Republisher struct {
	ttl     time.Duration
	publish func()
	log     *logger.L
}

// New - create the process
//
// publish performs one full directory pass and must never block for
// long or panic
func New(ttl time.Duration, publish func()) *Republisher {
	return &Republisher{
		ttl:     ttl,
		publish: publish,
		log:     logger.New("republisher"),
	}
}

// Run - re-announce until shutdown
func (r *Republisher) Run(args interface{}, shutdown <-chan struct{}) {

	log := r.log

	log.Info("starting…")

	delay := time.After(InitialDelay)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-delay:
			delay = time.After(offer.RepublishInterval(r.ttl))
			r.publish()
		}
	}
	log.Info("finished")
}
