// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package loopback - in-process collaborators
//
// synchronous, deterministic implementations of the network
// capability interfaces; the directory tests run against these and a
// standalone daemon can be wired with them when no real session is
// configured
package loopback

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/bitmark-inc/offerd/messages"
	"github.com/bitmark-inc/offerd/network"
	"github.com/bitmark-inc/offerd/offer"
)

// OfferBook - counts publishes and removals per offer id
type OfferBook struct {
	sync.Mutex

	published       map[string]int
	removed         map[string]int
	shutdownRemoved map[string]int

	publishErr error
	removeErr  error
}

// NewOfferBook - create an empty book
func NewOfferBook() *OfferBook {
	return &OfferBook{
		published:       make(map[string]int),
		removed:         make(map[string]int),
		shutdownRemoved: make(map[string]int),
	}
}

// Publish - count and confirm synchronously
func (b *OfferBook) Publish(o *offer.Offer, onSuccess func(), onError func(error)) {
	b.Lock()
	err := b.publishErr
	if nil == err {
		b.published[o.ID] += 1
	}
	b.Unlock()

	if nil != err {
		onError(err)
		return
	}
	onSuccess()
}

// Remove - count and confirm synchronously
func (b *OfferBook) Remove(o *offer.Offer, onSuccess func(), onError func(error)) {
	b.Lock()
	err := b.removeErr
	if nil == err {
		b.removed[o.ID] += 1
	}
	b.Unlock()

	if nil != err {
		onError(err)
		return
	}
	onSuccess()
}

// RemoveAtShutdown - count only, nobody is listening
func (b *OfferBook) RemoveAtShutdown(o *offer.Offer) {
	b.Lock()
	b.shutdownRemoved[o.ID] += 1
	b.Unlock()
}

// FailPublish - make following publishes fail with err, nil to clear
func (b *OfferBook) FailPublish(err error) {
	b.Lock()
	b.publishErr = err
	b.Unlock()
}

// FailRemove - make following removals fail with err, nil to clear
func (b *OfferBook) FailRemove(err error) {
	b.Lock()
	b.removeErr = err
	b.Unlock()
}

// PublishCount - confirmed publishes for one offer
func (b *OfferBook) PublishCount(offerID string) int {
	b.Lock()
	defer b.Unlock()
	return b.published[offerID]
}

// RemoveCount - confirmed removals for one offer
func (b *OfferBook) RemoveCount(offerID string) int {
	b.Lock()
	defer b.Unlock()
	return b.removed[offerID]
}

// ShutdownRemoveCount - fire-and-forget removals for one offer
func (b *OfferBook) ShutdownRemoveCount(offerID string) int {
	b.Lock()
	defer b.Unlock()
	return b.shutdownRemoved[offerID]
}

// Send - one recorded direct message
type Send struct {
	To              network.Address
	RecipientPubKey []byte
	Message         messages.Message
}

// Transport - an in-process session
type Transport struct {
	sync.Mutex

	bootstrapped bool
	peerCount    uint64
	observers    []network.Observer
	handlers     []func(m messages.Message, sender network.Address)
	sends        []Send
	sendErr      error
}

// NewTransport - create a not-yet-bootstrapped session
func NewTransport() *Transport {
	return &Transport{}
}

// IsBootstrapped - bootstrap state
func (t *Transport) IsBootstrapped() bool {
	t.Lock()
	defer t.Unlock()
	return t.bootstrapped
}

// ConnectedPeerCount - current peer count
func (t *Transport) ConnectedPeerCount() uint64 {
	t.Lock()
	defer t.Unlock()
	return t.peerCount
}

// AddObserver - subscribe to session events
func (t *Transport) AddObserver(o network.Observer) {
	t.Lock()
	defer t.Unlock()
	t.observers = append(t.observers, o)
}

// RemoveObserver - drop a subscription
func (t *Transport) RemoveObserver(o network.Observer) {
	t.Lock()
	defer t.Unlock()
	for i, observer := range t.observers {
		if o == observer {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// SendEncryptedDirect - record the send and confirm or fail
func (t *Transport) SendEncryptedDirect(to network.Address, recipientPubKey []byte, m messages.Message, listener network.SendListener) {
	t.Lock()
	err := t.sendErr
	if nil == err {
		t.sends = append(t.sends, Send{To: to, RecipientPubKey: recipientPubKey, Message: m})
	}
	t.Unlock()

	if nil != err {
		listener.OnFault(err)
		return
	}
	listener.OnArrived()
}

// SubscribeDecrypted - register an inbound message handler
func (t *Transport) SubscribeDecrypted(handler func(m messages.Message, sender network.Address)) {
	t.Lock()
	defer t.Unlock()
	t.handlers = append(t.handlers, handler)
}

// CompleteBootstrap - flip to bootstrapped and tell the observers
func (t *Transport) CompleteBootstrap() {
	t.Lock()
	t.bootstrapped = true
	observers := t.snapshotObservers()
	t.Unlock()

	for _, o := range observers {
		o.Update(network.EventBootstrap, nil)
	}
}

// SetPeerCount - change the peer count and tell the observers
func (t *Transport) SetPeerCount(n uint64) {
	t.Lock()
	oldCount := t.peerCount
	t.peerCount = n
	observers := t.snapshotObservers()
	t.Unlock()

	o := make([]byte, 8)
	binary.BigEndian.PutUint64(o, oldCount)
	c := make([]byte, 8)
	binary.BigEndian.PutUint64(c, n)
	args := [][]byte{o, c}

	for _, observer := range observers {
		observer.Update(network.EventPeers, args)
	}
}

// Deliver - hand an inbound message to the subscribed handlers
func (t *Transport) Deliver(m messages.Message, sender network.Address) {
	t.Lock()
	handlers := make([]func(messages.Message, network.Address), len(t.handlers))
	copy(handlers, t.handlers)
	t.Unlock()

	for _, handler := range handlers {
		handler(m, sender)
	}
}

// Sends - all recorded direct sends
func (t *Transport) Sends() []Send {
	t.Lock()
	defer t.Unlock()
	sends := make([]Send, len(t.sends))
	copy(sends, t.sends)
	return sends
}

// FailSends - make following sends fail with err, nil to clear
func (t *Transport) FailSends(err error) {
	t.Lock()
	defer t.Unlock()
	t.sendErr = err
}

// caller holds the lock
func (t *Transport) snapshotObservers() []network.Observer {
	observers := make([]network.Observer, len(t.observers))
	copy(observers, t.observers)
	return observers
}

// Placer - confirms every placement with a synthetic funding record
type Placer struct {
	sync.Mutex

	sequence int
	placeErr error
}

// NewPlacer - create a placer
func NewPlacer() *Placer {
	return &Placer{}
}

// Place - synchronous confirmation
func (p *Placer) Place(o *offer.Offer, onResult func(tx *network.FundingTransaction), onError func(error)) {
	p.Lock()
	err := p.placeErr
	p.sequence += 1
	sequence := p.sequence
	p.Unlock()

	if nil != err {
		onError(err)
		return
	}
	onResult(&network.FundingTransaction{
		TxID: fmt.Sprintf("funding-%d", sequence),
		Raw:  []byte(o.ID),
	})
}

// Fail - make following placements fail with err, nil to clear
func (p *Placer) Fail(err error) {
	p.Lock()
	defer p.Unlock()
	p.placeErr = err
}

// Archive - in-memory closed trade archive
type Archive struct {
	sync.Mutex

	entries map[string]offer.StoreEntity
}

// NewArchive - create an empty archive
func NewArchive() *Archive {
	return &Archive{entries: make(map[string]offer.StoreEntity)}
}

// Add - record a finished offer, duplicate-safe by id
func (a *Archive) Add(oo *offer.OpenOffer) error {
	a.Lock()
	defer a.Unlock()
	a.entries[oo.ID()] = oo.Entity()
	return nil
}

// Count - number of archived trades
func (a *Archive) Count() int {
	a.Lock()
	defer a.Unlock()
	return len(a.entries)
}

// Entry - one archived trade by offer id
func (a *Archive) Entry(offerID string) (offer.StoreEntity, bool) {
	a.Lock()
	defer a.Unlock()
	entity, ok := a.entries[offerID]
	return entity, ok
}

// Depository - counts save requests
type Depository struct {
	sync.Mutex

	saves int
}

// NewDepository - create a depository
func NewDepository() *Depository {
	return &Depository{}
}

// QueueForSave - count the request
func (d *Depository) QueueForSave() {
	d.Lock()
	defer d.Unlock()
	d.saves += 1
}

// Saves - number of save requests so far
func (d *Depository) Saves() int {
	d.Lock()
	defer d.Unlock()
	return d.saves
}
