// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"github.com/bitmark-inc/offerd/network"
	"github.com/bitmark-inc/offerd/offer"
)

// FindOpenOffer - look up an owned offer by id
func FindOpenOffer(offerID string) (*offer.OpenOffer, bool) {
	globalData.RLock()
	defer globalData.RUnlock()

	slot, ok := globalData.index[offerID]
	if !ok {
		return nil, false
	}
	return globalData.offers[slot], true
}

// OfferLocalState - current local state of an owned offer
//
// the state is read under the lock; handing the OpenOffer itself to
// another goroutine would let it read state racing a reserve
func OfferLocalState(offerID string) (offer.LocalState, bool) {
	globalData.RLock()
	defer globalData.RUnlock()

	slot, ok := globalData.index[offerID]
	if !ok {
		return 0, false
	}
	return globalData.offers[slot].State(), true
}

// PublicKey - this node's offer signing key
func PublicKey() []byte {
	globalData.RLock()
	defer globalData.RUnlock()

	if nil == globalData.keyPair {
		return nil
	}
	return globalData.keyPair.PublicKey
}

// IsMyOffer - check an offer against this node's signing key
func IsMyOffer(o *offer.Offer) bool {
	globalData.RLock()
	defer globalData.RUnlock()

	if nil == globalData.keyPair {
		return false
	}
	return o.IsMine(globalData.keyPair.PublicKey)
}

// ListOffers - snapshot of the directory in placement order
//
// entities, not live records: state is copied under the lock
func ListOffers() []offer.StoreEntity {
	globalData.RLock()
	defer globalData.RUnlock()

	snapshot := make([]offer.StoreEntity, 0, len(globalData.offers))
	for _, oo := range globalData.offers {
		snapshot = append(snapshot, oo.Entity())
	}
	return snapshot
}

// CountOffers - number of owned open offers
func CountOffers() int {
	globalData.RLock()
	defer globalData.RUnlock()

	return len(globalData.offers)
}

// RegisterObserver - subscribe to directory change events
func RegisterObserver(o network.Observer) {
	globalData.Lock()
	defer globalData.Unlock()

	globalData.observers = append(globalData.observers, o)
}

// DeregisterObserver - drop a change event subscription
func DeregisterObserver(o network.Observer) {
	globalData.Lock()
	defer globalData.Unlock()

	for i, observer := range globalData.observers {
		if o == observer {
			globalData.observers = append(globalData.observers[:i], globalData.observers[i+1:]...)
			return
		}
	}
}

// deliver a change event outside the lock
func notify(event string, offerID string) {
	globalData.RLock()
	observers := make([]network.Observer, len(globalData.observers))
	copy(observers, globalData.observers)
	globalData.RUnlock()

	args := [][]byte{[]byte(offerID)}
	for _, o := range observers {
		o.Update(event, args)
	}
}
