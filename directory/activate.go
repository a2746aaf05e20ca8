// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"github.com/bitmark-inc/offerd/background"
	"github.com/bitmark-inc/offerd/directory/observer"
	"github.com/bitmark-inc/offerd/directory/republisher"
	"github.com/bitmark-inc/offerd/fault"
)

// Activate - begin maintaining the network copies
//
// called once all services are up; republishing starts immediately on
// an already-bootstrapped session, otherwise as soon as the bootstrap
// event arrives
func Activate() error {
	globalData.RLock()
	if !globalData.initialised {
		globalData.RUnlock()
		return fault.NotInitialised
	}
	transport := globalData.transport
	log := globalData.log
	globalData.RUnlock()

	transport.AddObserver(observer.NewPeerCount(transport, RepublishAll, log))

	if transport.IsBootstrapped() {
		startRepublisher()
	} else {
		transport.AddObserver(observer.NewBootstrap(transport, startRepublisher, log))
	}
	return nil
}

func startRepublisher() {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised || globalData.republisherActive || globalData.shutdownRequested {
		return
	}

	r := republisher.New(globalData.ttl, RepublishAll)
	globalData.processes = background.Start([]background.Process{r}, nil)
	globalData.republisherActive = true
}
