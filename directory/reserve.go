// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"github.com/bitmark-inc/offerd/fault"
	"github.com/bitmark-inc/offerd/network"
	"github.com/bitmark-inc/offerd/offer"
)

// ReserveOffer - mark an offer as taken by a starting trade
//
// idempotent: reserving a reserved offer is a no-op; the offer stays
// in the directory and keeps being re-announced, the responder answers
// unavailable for it
func ReserveOffer(offerID string) error {
	globalData.Lock()

	if !globalData.initialised {
		globalData.Unlock()
		return fault.NotInitialised
	}

	slot, ok := globalData.index[offerID]
	if !ok {
		globalData.Unlock()
		return fault.OfferNotFound
	}

	oo := globalData.offers[slot]
	if offer.LocalReserved == oo.State() {
		globalData.Unlock()
		return nil
	}

	oo.Offer.SetState(offer.StateReserved)
	oo.SetState(offer.LocalReserved) // queues the save
	log := globalData.log
	globalData.Unlock()

	log.Infof("offer reserved: %s", offerID)
	notify(network.EventOfferChanged, offerID)
	return nil
}
