// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package network

import (
	"fmt"

	peerlib "github.com/libp2p/go-libp2p-core/peer"
	ma "github.com/multiformats/go-multiaddr"

	"github.com/bitmark-inc/offerd/messages"
	"github.com/bitmark-inc/offerd/offer"
)

// events delivered to observers
const (
	EventBootstrap = "bootstrap" // bootstrap completed, no arguments
	EventPeers     = "peers"     // connected peer count changed: old count, new count

	// local directory change events for registered observers
	EventOfferAdded   = "offer-added"
	EventOfferChanged = "offer-changed"
	EventOfferRemoved = "offer-removed"
)

// Address - where a direct message reply has to be sent
type Address struct {
	PeerID   peerlib.ID
	Listener ma.Multiaddr
}

func (a Address) String() string {
	if nil == a.Listener {
		return a.PeerID.String()
	}
	return fmt.Sprintf("%s/%s", a.Listener, a.PeerID)
}

// Observer - the event subscription interface
//
// one callback per event type, arguments are event specific
type Observer interface {
	Update(event string, args [][]byte)
}

// SendListener - outcome callbacks for a fire-and-forget direct send
type SendListener interface {
	OnArrived()
	OnFault(err error)
}

// OfferBook - the shared, TTL-based network directory of offers
//
// all operations are asynchronous; directory state must only change
// on a confirmed success callback
type OfferBook interface {
	Publish(o *offer.Offer, onSuccess func(), onError func(error))
	Remove(o *offer.Offer, onSuccess func(), onError func(error))

	// no callback: a fast possibly-incomplete cleanup is preferred
	// over blocking process exit
	RemoveAtShutdown(o *offer.Offer)
}

// Transport - the P2P session service
type Transport interface {
	IsBootstrapped() bool
	ConnectedPeerCount() uint64

	AddObserver(o Observer)
	RemoveObserver(o Observer)

	SendEncryptedDirect(to Address, recipientPubKey []byte, m messages.Message, listener SendListener)
	SubscribeDecrypted(handler func(m messages.Message, sender Address))
}

// FundingTransaction - produced by a successful offer placement
type FundingTransaction struct {
	TxID string
	Raw  []byte
}

// Placer - the multi-party offer placement protocol
type Placer interface {
	Place(o *offer.Offer, onResult func(tx *FundingTransaction), onError func(error))
}

// Archiver - the closed-trade archive
type Archiver interface {
	Add(oo *offer.OpenOffer) error
}
