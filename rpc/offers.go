// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"strings"
	"time"

	"github.com/mr-tron/base58"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerd/archive"
	"github.com/bitmark-inc/offerd/directory"
	"github.com/bitmark-inc/offerd/fault"
	"github.com/bitmark-inc/offerd/network"
	"github.com/bitmark-inc/offerd/offer"
)

const (
	rateLimit = 200
	rateBurst = 100

	// upper bound on waiting for the asynchronous directory callbacks
	callTimeout = 30 * time.Second
)

// Offers - type for the RPC
type Offers struct {
	Log     *logger.L
	Limiter *rate.Limiter

	version string
	start   time.Time
}

// NewOffers - create the offers service
func NewOffers(version string) *Offers {
	return &Offers{
		Log:     logger.New("rpc-offers"),
		Limiter: rate.NewLimiter(rateLimit, rateBurst),
		version: version,
		start:   time.Now(),
	}
}

// PlaceArguments - arguments for placing a new offer
type PlaceArguments struct {
	Direction string `json:"direction"`
	Currency  string `json:"currency"`
	Amount    uint64 `json:"amount"`
	MinAmount uint64 `json:"minAmount"`
	Price     uint64 `json:"price"`
}

// PlaceReply - result of a successful placement
type PlaceReply struct {
	OfferId     string `json:"offerId"`
	FundingTxId string `json:"fundingTxId"`
}

// Place - place a new offer into the network directory
func (o *Offers) Place(arguments *PlaceArguments, reply *PlaceReply) error {
	err := limit(o.Limiter)
	if nil != err {
		return err
	}

	var direction offer.Direction
	switch strings.ToLower(arguments.Direction) {
	case "buy":
		direction = offer.DirectionBuy
	case "sell":
		direction = offer.DirectionSell
	default:
		return fault.InvalidOfferDirection
	}

	record := offer.NewOffer(direction, arguments.Currency, arguments.Amount, arguments.MinAmount, arguments.Price, directory.PublicKey())

	o.Log.Infof("place: %s", record)

	done := make(chan error, 1)
	var tx *network.FundingTransaction
	directory.PlaceOffer(record,
		func(result *network.FundingTransaction) {
			tx = result
			done <- nil
		},
		func(err error) {
			done <- err
		},
	)

	select {
	case err := <-done:
		if nil != err {
			return err
		}
	case <-time.After(callTimeout):
		return fault.RequestTimedOut
	}

	reply.OfferId = record.ID
	reply.FundingTxId = tx.TxID
	return nil
}

// OfferIdArguments - arguments naming one owned offer
type OfferIdArguments struct {
	OfferId string `json:"offerId"`
}

// BoolReply - plain confirmation
type BoolReply struct {
	OK bool `json:"ok"`
}

// Remove - cancel an owned open offer
func (o *Offers) Remove(arguments *OfferIdArguments, reply *BoolReply) error {
	err := limit(o.Limiter)
	if nil != err {
		return err
	}
	if "" == arguments.OfferId {
		return fault.MissingOfferIdentifier
	}

	o.Log.Infof("remove: %s", arguments.OfferId)

	done := make(chan error, 1)
	directory.RemoveOpenOffer(arguments.OfferId,
		func() {
			done <- nil
		},
		func(err error) {
			done <- err
		},
	)

	select {
	case err := <-done:
		if nil != err {
			return err
		}
	case <-time.After(callTimeout):
		return fault.RequestTimedOut
	}

	reply.OK = true
	return nil
}

// Reserve - mark an owned offer as taken by a starting trade
func (o *Offers) Reserve(arguments *OfferIdArguments, reply *BoolReply) error {
	err := limit(o.Limiter)
	if nil != err {
		return err
	}
	if "" == arguments.OfferId {
		return fault.MissingOfferIdentifier
	}

	o.Log.Infof("reserve: %s", arguments.OfferId)

	err = directory.ReserveOffer(arguments.OfferId)
	if nil != err {
		return err
	}
	reply.OK = true
	return nil
}

// Close - a completed trade consumed the offer
func (o *Offers) Close(arguments *OfferIdArguments, reply *BoolReply) error {
	err := limit(o.Limiter)
	if nil != err {
		return err
	}
	if "" == arguments.OfferId {
		return fault.MissingOfferIdentifier
	}

	o.Log.Infof("close: %s", arguments.OfferId)

	err = directory.CloseOffer(arguments.OfferId)
	if nil != err {
		return err
	}
	reply.OK = true
	return nil
}

// OfferInfo - one owned offer as reported to callers
type OfferInfo struct {
	OfferId   string    `json:"offerId"`
	Direction string    `json:"direction"`
	Currency  string    `json:"currency"`
	Amount    uint64    `json:"amount"`
	MinAmount uint64    `json:"minAmount"`
	Price     uint64    `json:"price"`
	Owner     string    `json:"owner"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListArguments - placeholder
type ListArguments struct {
}

// ListReply - the owned open offers in placement order
type ListReply struct {
	Offers []OfferInfo `json:"offers"`
}

// List - report the directory
func (o *Offers) List(arguments *ListArguments, reply *ListReply) error {
	err := limit(o.Limiter)
	if nil != err {
		return err
	}

	owned := directory.ListOffers()
	infos := make([]OfferInfo, 0, len(owned))
	for _, entity := range owned {
		infos = append(infos, OfferInfo{
			OfferId:   entity.ID,
			Direction: entity.Direction.String(),
			Currency:  entity.Currency,
			Amount:    entity.Amount,
			MinAmount: entity.MinAmount,
			Price:     entity.Price,
			Owner:     base58.Encode(entity.OwnerPubKey),
			State:     entity.LocalState.String(),
			CreatedAt: entity.CreatedAt,
		})
	}
	reply.Offers = infos
	return nil
}

// StatusArguments - placeholder
type StatusArguments struct {
}

// StatusReply - daemon health summary
type StatusReply struct {
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	Offers      int    `json:"offers"`
	Republished uint64 `json:"republished"`
	Archived    int    `json:"archived"`
	Connections uint64 `json:"connections"`
}

// Status - report daemon health
func (o *Offers) Status(arguments *StatusArguments, reply *StatusReply) error {
	err := limit(o.Limiter)
	if nil != err {
		return err
	}

	reply.Version = o.version
	reply.Uptime = time.Since(o.start).String()
	reply.Offers = directory.CountOffers()
	reply.Republished = directory.RepublishCount()
	archived, err := archive.Count()
	if nil == err {
		reply.Archived = archived
	}
	reply.Connections = connectionCount.Uint64()
	return nil
}
