// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package observer - session event handlers for the offer directory
package observer

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerd/network"
)

// one-shot: start republishing when the session finishes its
// bootstrap, then stop listening
type bootstrap struct {
	transport network.Transport
	start     func()
	log       *logger.L
}

func (b *bootstrap) Update(str string, _ [][]byte) {
	if network.EventBootstrap == str {
		b.log.Info("bootstrap complete")
		b.start()
		b.transport.RemoveObserver(b)
	}
}

// NewBootstrap - create the bootstrap observer
func NewBootstrap(transport network.Transport, start func(), log *logger.L) network.Observer {
	return &bootstrap{transport: transport, start: start, log: log}
}
