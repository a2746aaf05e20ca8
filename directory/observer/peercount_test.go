// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package observer_test

import (
	"encoding/binary"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerd/directory/mocks"
	"github.com/bitmark-inc/offerd/directory/observer"
	"github.com/bitmark-inc/offerd/fixtures"
	"github.com/bitmark-inc/offerd/network"
)

func counts(oldCount uint64, newCount uint64) [][]byte {
	o := make([]byte, 8)
	binary.BigEndian.PutUint64(o, oldCount)
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, newCount)
	return [][]byte{o, n}
}

func TestPeerCountUpdateWhenAlreadyConnected(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockTransport(ctl)

	republished := 0
	p := observer.NewPeerCount(m, func() { republished++ }, logger.New("test"))

	p.Update(network.EventPeers, counts(2, 5))
	assert.Equal(t, 0, republished, "republished on a non-zero transition")
}

func TestPeerCountUpdateWhenPeersLost(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockTransport(ctl)

	republished := 0
	p := observer.NewPeerCount(m, func() { republished++ }, logger.New("test"))

	p.Update(network.EventPeers, counts(4, 0))
	assert.Equal(t, 0, republished, "republished on losing peers")
}

func TestPeerCountUpdateWhenEventNotMatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockTransport(ctl)

	republished := 0
	p := observer.NewPeerCount(m, func() { republished++ }, logger.New("test"))

	p.Update(network.EventBootstrap, nil)
	assert.Equal(t, 0, republished, "republished on wrong event")
}

func TestPeerCountUpdateWhenArgsMalformed(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockTransport(ctl)

	republished := 0
	p := observer.NewPeerCount(m, func() { republished++ }, logger.New("test"))

	p.Update(network.EventPeers, [][]byte{{1, 2, 3}})
	assert.Equal(t, 0, republished, "republished on malformed event")
}
