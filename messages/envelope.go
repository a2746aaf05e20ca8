// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messages

import (
	proto "github.com/gogo/protobuf/proto"

	"github.com/bitmark-inc/offerd/fault"
)

// Envelope - type tag plus encoded payload
type Envelope struct {
	Type    string `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Payload []byte `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *Envelope) Reset()         { *m = Envelope{} }
func (m *Envelope) String() string { return proto.CompactTextString(m) }
func (*Envelope) ProtoMessage()    {}

// Pack - encode a message into a tagged envelope
func Pack(m Message) ([]byte, error) {
	payload, err := proto.Marshal(m)
	if nil != err {
		return nil, err
	}
	return proto.Marshal(&Envelope{
		Type:    m.MessageType(),
		Payload: payload,
	})
}

// Unpack - decode a tagged envelope back into a message
func Unpack(data []byte) (Message, error) {
	envelope := &Envelope{}
	err := proto.Unmarshal(data, envelope)
	if nil != err {
		return nil, err
	}

	var m Message
	switch envelope.Type {
	case TypeOfferAvailabilityRequest:
		m = &OfferAvailabilityRequest{}
	case TypeOfferAvailabilityResponse:
		m = &OfferAvailabilityResponse{}
	default:
		return nil, fault.MissingParameters
	}

	err = proto.Unmarshal(envelope.Payload, m)
	if nil != err {
		return nil, err
	}
	return m, nil
}
