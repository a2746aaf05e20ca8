// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offer

import (
	"fmt"
	"time"
)

// LocalState - lifecycle of an offer this node still owns
type LocalState int

// all possible local states
//
// Canceled and Closed are terminal: the open offer leaves the local
// directory and is archived
const (
	LocalAvailable LocalState = iota
	LocalReserved
	LocalCanceled
	LocalClosed
)

func (s LocalState) String() string {
	switch s {
	case LocalAvailable:
		return "Available"
	case LocalReserved:
		return "Reserved"
	case LocalCanceled:
		return "Canceled"
	case LocalClosed:
		return "Closed"
	default:
		return fmt.Sprintf("LocalState(%d)", int(s))
	}
}

// Depository - durable storage for the directory of open offers
//
// QueueForSave must be safe to call from any goroutine and must not
// call back into the directory synchronously
type Depository interface {
	QueueForSave()
}

// OpenOffer - an offer this node originated and still owns locally
type OpenOffer struct {
	Offer     *Offer
	CreatedAt time.Time

	state      LocalState
	depository Depository
}

// NewOpenOffer - wrap a just-placed offer
func NewOpenOffer(o *Offer, depository Depository) *OpenOffer {
	return &OpenOffer{
		Offer:      o,
		CreatedAt:  time.Now(),
		state:      LocalAvailable,
		depository: depository,
	}
}

// ID - identity of the wrapped offer
func (oo *OpenOffer) ID() string {
	return oo.Offer.ID
}

// State - current local lifecycle state
func (oo *OpenOffer) State() LocalState {
	return oo.state
}

// SetState - record a local lifecycle change and queue it for saving
func (oo *OpenOffer) SetState(state LocalState) {
	oo.state = state
	if nil != oo.depository {
		oo.depository.QueueForSave()
	}
}

// SetDepository - attach the persistence handle
func (oo *OpenOffer) SetDepository(depository Depository) {
	oo.depository = depository
}

// StoreEntity - flattened open offer for durable storage
type StoreEntity struct {
	ID          string        `json:"id"`
	Direction   Direction     `json:"direction"`
	Currency    string        `json:"currency"`
	Amount      uint64        `json:"amount"`
	MinAmount   uint64        `json:"min_amount"`
	Price       uint64        `json:"price"`
	OwnerPubKey []byte        `json:"owner_pub_key"`
	TTL         time.Duration `json:"ttl"`
	SharedState State         `json:"shared_state"`
	LocalState  LocalState    `json:"local_state"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Entity - snapshot for storage
func (oo *OpenOffer) Entity() StoreEntity {
	o := oo.Offer
	return StoreEntity{
		ID:          o.ID,
		Direction:   o.Direction,
		Currency:    o.Currency,
		Amount:      o.Amount,
		MinAmount:   o.MinAmount,
		Price:       o.Price,
		OwnerPubKey: o.OwnerPubKey,
		TTL:         o.TTL,
		SharedState: o.state,
		LocalState:  oo.state,
		CreatedAt:   oo.CreatedAt,
	}
}

// FromEntity - rebuild an open offer from storage
func FromEntity(e StoreEntity, depository Depository) *OpenOffer {
	return &OpenOffer{
		Offer: &Offer{
			ID:          e.ID,
			Direction:   e.Direction,
			Currency:    e.Currency,
			Amount:      e.Amount,
			MinAmount:   e.MinAmount,
			Price:       e.Price,
			OwnerPubKey: e.OwnerPubKey,
			TTL:         e.TTL,
			state:       e.SharedState,
		},
		CreatedAt:  e.CreatedAt,
		state:      e.LocalState,
		depository: depository,
	}
}
