// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/offerd/directory"
	"github.com/bitmark-inc/offerd/fault"
	"github.com/bitmark-inc/offerd/fixtures"
	"github.com/bitmark-inc/offerd/loopback"
	"github.com/bitmark-inc/offerd/rpc"
	"github.com/bitmark-inc/offerd/sig"
)

func setup(t *testing.T) (*rpc.Offers, func()) {
	fixtures.SetupTestLogger()

	keyPair, err := sig.GenerateKeyPair()
	require.Nil(t, err, "key generation failed")

	err = directory.Initialise(
		keyPair,
		time.Hour,
		loopback.NewOfferBook(),
		loopback.NewTransport(),
		loopback.NewPlacer(),
		loopback.NewArchive(),
		loopback.NewDepository(),
		nil,
	)
	require.Nil(t, err, "directory initialise failed")

	return rpc.NewOffers("testing"), func() {
		_ = directory.Finalise()
		fixtures.TeardownTestLogger()
	}
}

func TestOffersPlaceListRemove(t *testing.T) {
	offers, teardown := setup(t)
	defer teardown()

	placed := rpc.PlaceReply{}
	err := offers.Place(&rpc.PlaceArguments{
		Direction: "sell",
		Currency:  "BTC",
		Amount:    1000,
		Price:     50,
	}, &placed)
	require.Nil(t, err, "place failed")
	assert.NotEmpty(t, placed.OfferId, "no offer id")
	assert.NotEmpty(t, placed.FundingTxId, "no funding transaction")

	listed := rpc.ListReply{}
	err = offers.List(&rpc.ListArguments{}, &listed)
	require.Nil(t, err, "list failed")
	require.Equal(t, 1, len(listed.Offers), "wrong offer count")
	assert.Equal(t, placed.OfferId, listed.Offers[0].OfferId, "wrong offer id")
	assert.Equal(t, "Sell", listed.Offers[0].Direction, "wrong direction")
	assert.Equal(t, "Available", listed.Offers[0].State, "wrong state")

	removed := rpc.BoolReply{}
	err = offers.Remove(&rpc.OfferIdArguments{OfferId: placed.OfferId}, &removed)
	require.Nil(t, err, "remove failed")
	assert.True(t, removed.OK, "not removed")
	assert.Equal(t, 0, directory.CountOffers(), "offer still open")
}

func TestOffersPlaceInvalidDirection(t *testing.T) {
	offers, teardown := setup(t)
	defer teardown()

	err := offers.Place(&rpc.PlaceArguments{
		Direction: "sideways",
		Currency:  "BTC",
		Amount:    1,
		Price:     1,
	}, &rpc.PlaceReply{})
	assert.Equal(t, fault.InvalidOfferDirection, err, "wrong error")
}

func TestOffersReserveAndClose(t *testing.T) {
	offers, teardown := setup(t)
	defer teardown()

	placed := rpc.PlaceReply{}
	err := offers.Place(&rpc.PlaceArguments{
		Direction: "buy",
		Currency:  "BTC",
		Amount:    10,
		Price:     3,
	}, &placed)
	require.Nil(t, err, "place failed")

	reserved := rpc.BoolReply{}
	err = offers.Reserve(&rpc.OfferIdArguments{OfferId: placed.OfferId}, &reserved)
	require.Nil(t, err, "reserve failed")
	assert.True(t, reserved.OK, "not reserved")

	closed := rpc.BoolReply{}
	err = offers.Close(&rpc.OfferIdArguments{OfferId: placed.OfferId}, &closed)
	require.Nil(t, err, "close failed")
	assert.True(t, closed.OK, "not closed")

	err = offers.Close(&rpc.OfferIdArguments{OfferId: placed.OfferId}, &rpc.BoolReply{})
	assert.Equal(t, fault.OfferNotFound, err, "wrong error on repeat close")
}

func TestOffersMissingIdentifier(t *testing.T) {
	offers, teardown := setup(t)
	defer teardown()

	err := offers.Remove(&rpc.OfferIdArguments{}, &rpc.BoolReply{})
	assert.Equal(t, fault.MissingOfferIdentifier, err, "wrong error")

	err = offers.Reserve(&rpc.OfferIdArguments{}, &rpc.BoolReply{})
	assert.Equal(t, fault.MissingOfferIdentifier, err, "wrong error")
}

func TestOffersStatus(t *testing.T) {
	offers, teardown := setup(t)
	defer teardown()

	err := offers.Place(&rpc.PlaceArguments{
		Direction: "sell",
		Currency:  "BTC",
		Amount:    5,
		Price:     2,
	}, &rpc.PlaceReply{})
	require.Nil(t, err, "place failed")

	status := rpc.StatusReply{}
	err = offers.Status(&rpc.StatusArguments{}, &status)
	require.Nil(t, err, "status failed")
	assert.Equal(t, "testing", status.Version, "wrong version")
	assert.Equal(t, 1, status.Offers, "wrong offer count")
}
