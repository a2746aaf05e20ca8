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

// PlaceOffer - run the placement protocol and take ownership
//
// the offer enters the directory only after the placer confirms the
// funding transaction; any failure leaves the directory unchanged
func PlaceOffer(o *offer.Offer, onResult func(tx *network.FundingTransaction), onError func(error)) {

	err := o.Validate()
	if nil != err {
		onError(err)
		return
	}

	globalData.RLock()
	if !globalData.initialised {
		globalData.RUnlock()
		onError(fault.NotInitialised)
		return
	}
	if globalData.shutdownRequested {
		globalData.RUnlock()
		onError(fault.ShutdownRequested)
		return
	}
	if _, ok := globalData.index[o.ID]; ok {
		globalData.RUnlock()
		onError(fault.OfferAlreadyOpen)
		return
	}
	if _, ok := globalData.tombstones.Get(o.ID); ok {
		globalData.RUnlock()
		onError(fault.OfferAlreadyRemoved)
		return
	}
	placer := globalData.placer
	log := globalData.log
	globalData.RUnlock()

	log.Infof("placing %s", o)

	placer.Place(o,
		func(tx *network.FundingTransaction) {
			globalData.Lock()
			if globalData.shutdownRequested {
				globalData.Unlock()
				onError(fault.ShutdownRequested)
				return
			}
			oo := offer.NewOpenOffer(o, globalData.depository)
			globalData.index[o.ID] = len(globalData.offers)
			globalData.offers = append(globalData.offers, oo)
			globalData.depository.QueueForSave()
			globalData.Unlock()

			log.Infof("offer placed: %s  funding: %s", o.ID, tx.TxID)
			notify(network.EventOfferAdded, o.ID)
			onResult(tx)
		},
		func(err error) {
			log.Warnf("place offer: %s  error: %s", o.ID, err)
			onError(err)
		},
	)
}
