// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package responder - answers availability requests from takers
//
// a taker asks before attempting to reserve; the answer reflects the
// owner's local state, which is more current than the network copy
package responder

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerd/fault"
	"github.com/bitmark-inc/offerd/messages"
	"github.com/bitmark-inc/offerd/network"
	"github.com/bitmark-inc/offerd/offer"
)

const (
	rateLimit = 50
	rateBurst = 100
)

// Responder - the inbound message handler
type Responder struct {
	log       *logger.L
	transport network.Transport
	find      func(offerID string) (offer.LocalState, bool)
	limiter   *rate.Limiter
}

// New - create a responder
//
// find must be safe for concurrent use and must read the state under
// the directory lock; a reserve racing the lookup must never be seen
// as a torn read
func New(transport network.Transport, find func(offerID string) (offer.LocalState, bool)) *Responder {
	return &Responder{
		log:       logger.New("responder"),
		transport: transport,
		find:      find,
		limiter:   rate.NewLimiter(rateLimit, rateBurst),
	}
}

// Handle - dispatch one decrypted inbound message
//
// never propagates: a malformed or hostile request must not take the
// dispatch loop down
func (r *Responder) Handle(m messages.Message, sender network.Address) {
	defer func() {
		if p := recover(); nil != p {
			r.log.Criticalf("handler panic: %v", p)
		}
	}()

	switch request := m.(type) {
	case *messages.OfferAvailabilityRequest:
		r.availability(request, sender)
	default:
		r.log.Debugf("ignored message: %s", m.MessageType())
	}
}

func (r *Responder) availability(request *messages.OfferAvailabilityRequest, sender network.Address) {

	log := r.log

	if "" == request.OfferId {
		log.Warnf("availability request without offer id from: %s", sender)
		return
	}
	if 0 == len(request.PubKey) {
		log.Warnf("availability request without public key from: %s", sender)
		return
	}
	if !r.limiter.Allow() {
		log.Warnf("availability request from: %s dropped: %s", sender, fault.RateLimiting)
		return
	}

	available := false
	if state, ok := r.find(request.OfferId); ok {
		available = offer.LocalAvailable == state
	}

	response := &messages.OfferAvailabilityResponse{
		OfferId:   request.OfferId,
		Available: available,
	}

	log.Infof("availability: %s  available: %t  to: %s", request.OfferId, available, sender)
	r.transport.SendEncryptedDirect(sender, request.PubKey, response, &sendLogger{log: log, to: sender})
}

// outcome logging for the fire-and-forget reply
type sendLogger struct {
	log *logger.L
	to  network.Address
}

func (s *sendLogger) OnArrived() {
	s.log.Debugf("response arrived: %s", s.to)
}

func (s *sendLogger) OnFault(err error) {
	s.log.Warnf("response to: %s failed: %s", s.to, err)
}
