// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/offerd/messages"
)

func TestPackUnpackRequest(t *testing.T) {
	request := &messages.OfferAvailabilityRequest{
		OfferId: "a1b2c3",
		PubKey:  []byte{0x01, 0x02, 0x03},
	}

	data, err := messages.Pack(request)
	require.Nil(t, err, "pack failed")

	m, err := messages.Unpack(data)
	require.Nil(t, err, "unpack failed")

	decoded, ok := m.(*messages.OfferAvailabilityRequest)
	require.True(t, ok, "wrong message type: %T", m)
	assert.Equal(t, request.OfferId, decoded.OfferId, "wrong offer id")
	assert.Equal(t, request.PubKey, decoded.PubKey, "wrong public key")
}

func TestPackUnpackResponse(t *testing.T) {
	response := &messages.OfferAvailabilityResponse{
		OfferId:   "a1b2c3",
		Available: true,
	}

	data, err := messages.Pack(response)
	require.Nil(t, err, "pack failed")

	m, err := messages.Unpack(data)
	require.Nil(t, err, "unpack failed")

	decoded, ok := m.(*messages.OfferAvailabilityResponse)
	require.True(t, ok, "wrong message type: %T", m)
	assert.Equal(t, response.OfferId, decoded.OfferId, "wrong offer id")
	assert.True(t, decoded.Available, "wrong availability")
}

func TestUnpackUnknownType(t *testing.T) {
	_, err := messages.Unpack([]byte{0x0a, 0x03, 'b', 'a', 'd'})
	assert.NotNil(t, err, "unknown envelope type accepted")
}
