// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offer

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/offerd/fault"
)

// State - standing of an offer in the shared network directory
type State int

// all possible shared states
const (
	StateAvailable State = iota
	StateReserved
	StateClosed
	StateRemoved
)

func (s State) String() string {
	switch s {
	case StateAvailable:
		return "Available"
	case StateReserved:
		return "Reserved"
	case StateClosed:
		return "Closed"
	case StateRemoved:
		return "Removed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Direction - which side of the trade the owner takes
type Direction int

// all possible directions
const (
	DirectionBuy Direction = iota
	DirectionSell
)

func (d Direction) String() string {
	switch d {
	case DirectionBuy:
		return "Buy"
	case DirectionSell:
		return "Sell"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// DefaultTTL - network copies of a published offer are stale after
// this long without a re-announcement
//
// removal at shutdown is best-effort only, so the TTL is kept short
// and republishing is the strategy against dangling dead offers
const DefaultTTL = 10 * time.Minute

// RepublishInterval - how often an offer with the given TTL has to be
// re-announced
//
// well before expiry to tolerate clock drift and propagation delay
func RepublishInterval(ttl time.Duration) time.Duration {
	return ttl * 7 / 10
}

// Offer - a trade proposal published into the network directory
type Offer struct {
	ID          string
	Direction   Direction
	Currency    string
	Amount      uint64
	MinAmount   uint64
	Price       uint64
	OwnerPubKey []byte
	TTL         time.Duration

	state State
}

// NewID - a fresh random offer identifier
func NewID() string {
	buffer := make([]byte, 16)
	_, err := rand.Read(buffer)
	if nil != err {
		// only if the system entropy source is broken
		panic("offer.NewID: rand failed: " + err.Error())
	}
	return hex.EncodeToString(buffer)
}

// NewOffer - assemble an offer with a fresh id and the default TTL
func NewOffer(direction Direction, currency string, amount uint64, minAmount uint64, price uint64, ownerPubKey []byte) *Offer {
	return &Offer{
		ID:          NewID(),
		Direction:   direction,
		Currency:    currency,
		Amount:      amount,
		MinAmount:   minAmount,
		Price:       price,
		OwnerPubKey: ownerPubKey,
		TTL:         DefaultTTL,
		state:       StateAvailable,
	}
}

// State - current shared network state
func (o *Offer) State() State {
	return o.state
}

// SetState - record a shared network state change
func (o *Offer) SetState(state State) {
	o.state = state
}

// IsMine - check if a public key ring corresponds to this offer's owner
func (o *Offer) IsMine(publicKey []byte) bool {
	if 0 == len(o.OwnerPubKey) || len(o.OwnerPubKey) != len(publicKey) {
		return false
	}
	for i, b := range o.OwnerPubKey {
		if publicKey[i] != b {
			return false
		}
	}
	return true
}

// Validate - structural checks before an offer may be placed
func (o *Offer) Validate() error {
	switch {
	case "" == o.ID:
		return fault.MissingOfferIdentifier
	case 0 == len(o.OwnerPubKey):
		return fault.MissingOwnerPublicKey
	case "" == o.Currency:
		return fault.InvalidOfferCurrency
	case 0 == o.Amount || o.MinAmount > o.Amount || 0 == o.Price:
		return fault.InvalidOfferAmount
	case o.TTL <= 0:
		return fault.InvalidOfferTTL
	default:
		return nil
	}
}

func (o *Offer) String() string {
	return fmt.Sprintf("offer[%s %s %d %s @ %d owner: %s]",
		o.ID, o.Direction, o.Amount, o.Currency, o.Price, base58.Encode(o.OwnerPubKey))
}
