// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/offerd/fault"
	"github.com/bitmark-inc/offerd/network"
	"github.com/bitmark-inc/offerd/offer"
)

// CloseOffer - a completed trade consumed the offer
//
// the local record goes immediately; the network copy is withdrawn
// best-effort and would expire by TTL anyway
func CloseOffer(offerID string) error {
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
	removeSlot(slot)
	globalData.tombstones.Set(offerID, struct{}{}, cache.NoExpiration)
	oo.Offer.SetState(offer.StateClosed)
	oo.SetState(offer.LocalClosed) // queues the save
	offerBook := globalData.offerBook
	archiver := globalData.archiver
	log := globalData.log
	globalData.Unlock()

	err := archiver.Add(oo)
	if nil != err {
		log.Errorf("archive offer: %s  error: %s", offerID, err)
	}

	notify(network.EventOfferRemoved, offerID)

	offerBook.Remove(oo.Offer,
		func() {
			log.Debugf("closed offer withdrawn: %s", offerID)
		},
		func(err error) {
			log.Warnf("withdraw closed offer: %s  error: %s", offerID, err)
		},
	)

	log.Infof("offer closed: %s", offerID)
	return nil
}
