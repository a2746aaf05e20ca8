// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package responder_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/offerd/directory/mocks"
	"github.com/bitmark-inc/offerd/directory/responder"
	"github.com/bitmark-inc/offerd/fixtures"
	"github.com/bitmark-inc/offerd/messages"
	"github.com/bitmark-inc/offerd/network"
	"github.com/bitmark-inc/offerd/offer"
)

func newDirectory(offers ...*offer.OpenOffer) func(string) (offer.LocalState, bool) {
	return func(offerID string) (offer.LocalState, bool) {
		for _, oo := range offers {
			if offerID == oo.ID() {
				return oo.State(), true
			}
		}
		return 0, false
	}
}

func TestAvailabilityForOpenOffer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockTransport(ctl)

	o := offer.NewOffer(offer.DirectionSell, "BTC", 100, 0, 7, fixtures.PublicKey1)
	oo := offer.NewOpenOffer(o, nil)

	var sent messages.Message
	m.EXPECT().
		SendEncryptedDirect(gomock.Any(), fixtures.PublicKey2, gomock.Any(), gomock.Any()).
		Do(func(_ network.Address, _ []byte, msg messages.Message, _ network.SendListener) {
			sent = msg
		}).
		Times(1)

	r := responder.New(m, newDirectory(oo))
	r.Handle(&messages.OfferAvailabilityRequest{
		OfferId: o.ID,
		PubKey:  fixtures.PublicKey2,
	}, network.Address{})

	require.NotNil(t, sent, "no response sent")
	response, ok := sent.(*messages.OfferAvailabilityResponse)
	require.True(t, ok, "wrong response type")
	assert.Equal(t, o.ID, response.OfferId, "wrong offer id")
	assert.True(t, response.Available, "open offer reported unavailable")
}

func TestAvailabilityForReservedOffer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockTransport(ctl)

	o := offer.NewOffer(offer.DirectionSell, "BTC", 100, 0, 7, fixtures.PublicKey1)
	oo := offer.NewOpenOffer(o, nil)
	oo.SetState(offer.LocalReserved)

	var sent messages.Message
	m.EXPECT().
		SendEncryptedDirect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ network.Address, _ []byte, msg messages.Message, _ network.SendListener) {
			sent = msg
		}).
		Times(1)

	r := responder.New(m, newDirectory(oo))
	r.Handle(&messages.OfferAvailabilityRequest{
		OfferId: o.ID,
		PubKey:  fixtures.PublicKey2,
	}, network.Address{})

	response, ok := sent.(*messages.OfferAvailabilityResponse)
	require.True(t, ok, "wrong response type")
	assert.False(t, response.Available, "reserved offer reported available")
}

func TestAvailabilityForUnknownOffer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockTransport(ctl)

	var sent messages.Message
	m.EXPECT().
		SendEncryptedDirect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ network.Address, _ []byte, msg messages.Message, _ network.SendListener) {
			sent = msg
		}).
		Times(1)

	r := responder.New(m, newDirectory())
	r.Handle(&messages.OfferAvailabilityRequest{
		OfferId: "0011223344556677",
		PubKey:  fixtures.PublicKey2,
	}, network.Address{})

	response, ok := sent.(*messages.OfferAvailabilityResponse)
	require.True(t, ok, "wrong response type")
	assert.False(t, response.Available, "unknown offer reported available")
}

func TestAvailabilityDropsEmptyOfferID(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockTransport(ctl)

	m.EXPECT().SendEncryptedDirect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	r := responder.New(m, newDirectory())
	r.Handle(&messages.OfferAvailabilityRequest{
		OfferId: "",
		PubKey:  fixtures.PublicKey2,
	}, network.Address{})
}

func TestAvailabilityDropsMissingPubKey(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockTransport(ctl)

	m.EXPECT().SendEncryptedDirect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	r := responder.New(m, newDirectory())
	r.Handle(&messages.OfferAvailabilityRequest{
		OfferId: "0011223344556677",
	}, network.Address{})
}

func TestHandleIgnoresOtherMessages(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockTransport(ctl)

	m.EXPECT().SendEncryptedDirect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	r := responder.New(m, newDirectory())
	r.Handle(&messages.OfferAvailabilityResponse{OfferId: "x"}, network.Address{})
}

func TestHandleSurvivesPanic(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockTransport(ctl)

	r := responder.New(m, func(string) (offer.LocalState, bool) {
		panic("lookup broken")
	})

	assert.NotPanics(t, func() {
		r.Handle(&messages.OfferAvailabilityRequest{
			OfferId: "0011223344556677",
			PubKey:  fixtures.PublicKey2,
		}, network.Address{})
	}, "panic escaped the handler")
}
