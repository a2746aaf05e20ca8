// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"time"

	"github.com/bitmark-inc/offerd/offer"
)

const (
	shutdownDelayPerOffer = 200 * time.Millisecond
	shutdownDelayBase     = 300 * time.Millisecond
)

// ShutdownDelay - grace period granted to n fire-and-forget removals
func ShutdownDelay(n int) time.Duration {
	return time.Duration(n)*shutdownDelayPerOffer + shutdownDelayBase
}

// Shutdown - withdraw all network copies and stop republishing
//
// idempotent and safe concurrently with any other operation; never
// waits on removal confirmations: complete fires after a fixed grace
// period sized by the number of offers
func Shutdown(complete func()) {
	globalData.Lock()
	if !globalData.initialised || globalData.shutdownRequested {
		globalData.Unlock()
		if nil != complete {
			complete()
		}
		return
	}
	globalData.shutdownRequested = true

	snapshot := make([]*offer.OpenOffer, len(globalData.offers))
	copy(snapshot, globalData.offers)
	processes := globalData.processes
	globalData.processes = nil
	globalData.republisherActive = false
	offerBook := globalData.offerBook
	log := globalData.log
	globalData.Unlock()

	log.Infof("shutting down…  open offers: %d", len(snapshot))

	processes.Stop()

	for _, oo := range snapshot {
		offerBook.RemoveAtShutdown(oo.Offer)
	}

	if nil != complete {
		time.AfterFunc(ShutdownDelay(len(snapshot)), complete)
	}
}
