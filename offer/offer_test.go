// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/offerd/fault"
	"github.com/bitmark-inc/offerd/offer"
)

type saveCounter struct {
	count int
}

func (s *saveCounter) QueueForSave() {
	s.count += 1
}

func TestRepublishInterval(t *testing.T) {
	assert.Equal(t, time.Duration(70), offer.RepublishInterval(time.Duration(100)), "wrong interval")
	assert.Equal(t, 7*time.Minute, offer.RepublishInterval(10*time.Minute), "wrong interval")
}

func TestNewOffer(t *testing.T) {
	owner := []byte{0x01, 0x02, 0x03}
	o := offer.NewOffer(offer.DirectionSell, "BTC", 5000, 1000, 250, owner)

	assert.Equal(t, 32, len(o.ID), "wrong id length")
	assert.Equal(t, offer.DefaultTTL, o.TTL, "wrong TTL")
	assert.Equal(t, offer.StateAvailable, o.State(), "wrong initial state")
	assert.Nil(t, o.Validate(), "valid offer rejected")

	o2 := offer.NewOffer(offer.DirectionSell, "BTC", 5000, 1000, 250, owner)
	assert.NotEqual(t, o.ID, o2.ID, "duplicate offer id")
}

func TestValidate(t *testing.T) {
	owner := []byte{0x01}

	o := offer.NewOffer(offer.DirectionBuy, "BTC", 100, 10, 5, owner)
	o.ID = ""
	assert.Equal(t, fault.MissingOfferIdentifier, o.Validate(), "wrong error")

	o = offer.NewOffer(offer.DirectionBuy, "BTC", 100, 10, 5, nil)
	assert.Equal(t, fault.MissingOwnerPublicKey, o.Validate(), "wrong error")

	o = offer.NewOffer(offer.DirectionBuy, "", 100, 10, 5, owner)
	assert.Equal(t, fault.InvalidOfferCurrency, o.Validate(), "wrong error")

	o = offer.NewOffer(offer.DirectionBuy, "BTC", 100, 200, 5, owner)
	assert.Equal(t, fault.InvalidOfferAmount, o.Validate(), "wrong error")

	o = offer.NewOffer(offer.DirectionBuy, "BTC", 100, 10, 5, owner)
	o.TTL = 0
	assert.Equal(t, fault.InvalidOfferTTL, o.Validate(), "wrong error")
}

func TestIsMine(t *testing.T) {
	owner := []byte{0xaa, 0xbb, 0xcc}
	o := offer.NewOffer(offer.DirectionBuy, "LTC", 100, 0, 7, owner)

	assert.True(t, o.IsMine([]byte{0xaa, 0xbb, 0xcc}), "own offer not recognised")
	assert.False(t, o.IsMine([]byte{0xaa, 0xbb, 0xcd}), "foreign key accepted")
	assert.False(t, o.IsMine([]byte{0xaa, 0xbb}), "short key accepted")
	assert.False(t, o.IsMine(nil), "nil key accepted")
}

func TestOpenOfferLifecycle(t *testing.T) {
	saves := &saveCounter{}
	o := offer.NewOffer(offer.DirectionSell, "BTC", 100, 0, 9, []byte{0x01})
	oo := offer.NewOpenOffer(o, saves)

	assert.Equal(t, o.ID, oo.ID(), "wrong id")
	assert.Equal(t, offer.LocalAvailable, oo.State(), "wrong initial state")

	oo.SetState(offer.LocalReserved)
	assert.Equal(t, offer.LocalReserved, oo.State(), "state not changed")
	assert.Equal(t, 1, saves.count, "state change not queued for save")

	oo.SetState(offer.LocalCanceled)
	assert.Equal(t, 2, saves.count, "state change not queued for save")
}

func TestEntityRoundTrip(t *testing.T) {
	o := offer.NewOffer(offer.DirectionSell, "BTC", 4000, 500, 123, []byte{0x0f, 0x1e})
	oo := offer.NewOpenOffer(o, nil)
	oo.SetState(offer.LocalReserved)
	o.SetState(offer.StateReserved)

	e := oo.Entity()
	require.Equal(t, o.ID, e.ID, "wrong entity id")

	restored := offer.FromEntity(e, nil)
	assert.Equal(t, o.ID, restored.ID(), "wrong id")
	assert.Equal(t, offer.LocalReserved, restored.State(), "wrong local state")
	assert.Equal(t, offer.StateReserved, restored.Offer.State(), "wrong shared state")
	assert.Equal(t, o.Amount, restored.Offer.Amount, "wrong amount")
	assert.Equal(t, o.OwnerPubKey, restored.Offer.OwnerPubKey, "wrong owner key")
}
