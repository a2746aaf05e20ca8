// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"github.com/bitmark-inc/offerd/offer"
)

// RepublishAll - one full re-announcement pass over the directory
//
// reserved offers are included: a reserved offer may come back if the
// trade start fails, and the responder already answers unavailable for
// it; per-offer failures are logged and never abort the pass
func RepublishAll() {
	globalData.RLock()
	if !globalData.initialised || globalData.shutdownRequested {
		globalData.RUnlock()
		return
	}
	snapshot := make([]*offer.OpenOffer, len(globalData.offers))
	copy(snapshot, globalData.offers)
	offerBook := globalData.offerBook
	log := globalData.log
	globalData.RUnlock()

	if 0 == len(snapshot) {
		return
	}

	log.Infof("republishing %d offers", len(snapshot))

	for _, oo := range snapshot {
		o := oo.Offer
		offerBook.Publish(o,
			func() {
				globalData.republished.Increment()
				log.Debugf("republished offer: %s", o.ID)
			},
			func(err error) {
				log.Warnf("republish offer: %s  error: %s", o.ID, err)
			},
		)
	}
}

// RepublishCount - confirmed re-announcements since start
func RepublishCount() uint64 {
	return globalData.republished.Uint64()
}
