// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messages

import (
	proto "github.com/gogo/protobuf/proto"
)

// message type tags carried in the envelope
const (
	TypeOfferAvailabilityRequest  = "offer-availability-request"
	TypeOfferAvailabilityResponse = "offer-availability-response"
)

// Message - any direct peer message record
type Message interface {
	proto.Message
	MessageType() string
}

// OfferAvailabilityRequest - a peer asks if an offer is still open
//
// PubKey is the requester's message key, the reply is encrypted to it
type OfferAvailabilityRequest struct {
	OfferId string `protobuf:"bytes,1,opt,name=offer_id,proto3" json:"offer_id,omitempty"`
	PubKey  []byte `protobuf:"bytes,2,opt,name=pub_key,proto3" json:"pub_key,omitempty"`
}

func (m *OfferAvailabilityRequest) Reset()         { *m = OfferAvailabilityRequest{} }
func (m *OfferAvailabilityRequest) String() string { return proto.CompactTextString(m) }
func (*OfferAvailabilityRequest) ProtoMessage()    {}

// MessageType - envelope tag
func (*OfferAvailabilityRequest) MessageType() string {
	return TypeOfferAvailabilityRequest
}

// OfferAvailabilityResponse - the answer to an availability request
type OfferAvailabilityResponse struct {
	OfferId   string `protobuf:"bytes,1,opt,name=offer_id,proto3" json:"offer_id,omitempty"`
	Available bool   `protobuf:"varint,2,opt,name=available,proto3" json:"available,omitempty"`
}

func (m *OfferAvailabilityResponse) Reset()         { *m = OfferAvailabilityResponse{} }
func (m *OfferAvailabilityResponse) String() string { return proto.CompactTextString(m) }
func (*OfferAvailabilityResponse) ProtoMessage()    {}

// MessageType - envelope tag
func (*OfferAvailabilityResponse) MessageType() string {
	return TypeOfferAvailabilityResponse
}
