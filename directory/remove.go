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

// RemoveOffer - cancel an offer presented by the caller
//
// an offer record that is not in the directory (already canceled, or
// never ours) still gets a best-effort network removal so a dangling
// network copy disappears
func RemoveOffer(o *offer.Offer, onSuccess func(), onError func(error)) {
	globalData.RLock()
	if !globalData.initialised {
		globalData.RUnlock()
		onError(fault.NotInitialised)
		return
	}
	_, ok := globalData.index[o.ID]
	offerBook := globalData.offerBook
	log := globalData.log
	globalData.RUnlock()

	if !ok {
		log.Warnf("remove: offer not open: %s", o.ID)
		offerBook.Remove(o,
			func() {
				o.SetState(offer.StateRemoved)
				onSuccess()
			},
			onError,
		)
		return
	}

	RemoveOpenOffer(o.ID, onSuccess, onError)
}

// RemoveOpenOffer - cancel an owned open offer by id
//
// network removal first: the directory only changes on a confirmed
// success, a failed removal leaves the offer open and re-announced
func RemoveOpenOffer(offerID string, onSuccess func(), onError func(error)) {
	globalData.RLock()
	if !globalData.initialised {
		globalData.RUnlock()
		onError(fault.NotInitialised)
		return
	}
	slot, ok := globalData.index[offerID]
	if !ok {
		globalData.RUnlock()
		onError(fault.OfferNotFound)
		return
	}
	oo := globalData.offers[slot]
	offerBook := globalData.offerBook
	log := globalData.log
	globalData.RUnlock()

	offerBook.Remove(oo.Offer,
		func() {
			if finishRemoval(oo) {
				notify(network.EventOfferRemoved, offerID)
			}
			onSuccess()
		},
		func(err error) {
			log.Warnf("remove offer: %s  error: %s", offerID, err)
			onError(err)
		},
	)
}

// delete the offer from the directory exactly once
//
// false when another confirmation got there first
func finishRemoval(oo *offer.OpenOffer) bool {
	offerID := oo.ID()

	globalData.Lock()
	slot, ok := globalData.index[offerID]
	if !ok {
		globalData.Unlock()
		return false
	}
	removeSlot(slot)
	globalData.tombstones.Set(offerID, struct{}{}, cache.NoExpiration)
	oo.Offer.SetState(offer.StateRemoved)
	oo.SetState(offer.LocalCanceled) // queues the save
	archiver := globalData.archiver
	log := globalData.log
	globalData.Unlock()

	err := archiver.Add(oo)
	if nil != err {
		log.Errorf("archive offer: %s  error: %s", offerID, err)
	}
	log.Infof("offer canceled: %s", offerID)
	return true
}

// caller holds the write lock
func removeSlot(slot int) {
	offerID := globalData.offers[slot].ID()
	copy(globalData.offers[slot:], globalData.offers[slot+1:])
	globalData.offers = globalData.offers[:len(globalData.offers)-1]
	delete(globalData.index, offerID)
	for i := slot; i < len(globalData.offers); i += 1 {
		globalData.index[globalData.offers[i].ID()] = i
	}
}
