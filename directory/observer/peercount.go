// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package observer

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerd/network"
)

const (
	// coming back from zero peers means the network copies of our
	// offers may have expired unseen: republish at once, then once
	// more after the connection count has had time to settle
	stabiliseDelay        = 10 * time.Second
	stabiliseMinimumPeers = 3
)

type peercount struct {
	transport network.Transport
	republish func()
	stabilise time.Duration
	log       *logger.L
}

func (p *peercount) Update(str string, args [][]byte) {
	if network.EventPeers != str {
		return
	}
	if 2 != len(args) || 8 != len(args[0]) || 8 != len(args[1]) {
		p.log.Warn("malformed peer count event")
		return
	}

	oldCount := binary.BigEndian.Uint64(args[0])
	newCount := binary.BigEndian.Uint64(args[1])
	if 0 != oldCount || 0 == newCount {
		return
	}

	p.log.Infof("peers restored: %d", newCount)
	p.republish()

	time.AfterFunc(p.stabilise, func() {
		if stabiliseMinimumPeers < p.transport.ConnectedPeerCount() {
			p.republish()
		}
	})
}

// NewPeerCount - create the peer count observer
func NewPeerCount(transport network.Transport, republish func(), log *logger.L) network.Observer {
	return &peercount{
		transport: transport,
		republish: republish,
		stabilise: stabiliseDelay,
		log:       log,
	}
}
