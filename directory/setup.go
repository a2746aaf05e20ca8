// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerd/background"
	"github.com/bitmark-inc/offerd/counter"
	"github.com/bitmark-inc/offerd/directory/responder"
	"github.com/bitmark-inc/offerd/fault"
	"github.com/bitmark-inc/offerd/network"
	"github.com/bitmark-inc/offerd/offer"
	"github.com/bitmark-inc/offerd/sig"
)

// globals
type directoryData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	keyPair *sig.KeyPair
	ttl     time.Duration

	offerBook  network.OfferBook
	transport  network.Transport
	placer     network.Placer
	archiver   network.Archiver
	depository offer.Depository

	offers []*offer.OpenOffer // placement order
	index  map[string]int     // offer id → slot in offers

	// ids of removed offers; a removed offer can never re-enter
	tombstones *cache.Cache

	observers []network.Observer

	handler *responder.Responder

	republished counter.Counter

	processes         *background.T
	republisherActive bool
	shutdownRequested bool

	// set once during initialise
	initialised bool
}

// global data
var globalData directoryData

// Initialise - set up the directory
//
// restored is the persisted directory from the previous run; the
// collaborators are the embedding node's offer book, session transport,
// placement protocol, archive and durable storage
func Initialise(
	keyPair *sig.KeyPair,
	ttl time.Duration,
	offerBook network.OfferBook,
	transport network.Transport,
	placer network.Placer,
	archiver network.Archiver,
	depository offer.Depository,
	restored []offer.StoreEntity,
) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	if nil == offerBook || nil == placer || nil == archiver || nil == depository {
		return fault.MissingParameters
	}
	if nil == transport {
		return fault.TransportNotConfigured
	}

	globalData.log = logger.New("directory")
	globalData.log.Info("starting…")

	if ttl <= 0 {
		ttl = offer.DefaultTTL
	}

	globalData.keyPair = keyPair
	globalData.ttl = ttl
	globalData.offerBook = offerBook
	globalData.transport = transport
	globalData.placer = placer
	globalData.archiver = archiver
	globalData.depository = depository

	globalData.offers = make([]*offer.OpenOffer, 0, 16)
	globalData.index = make(map[string]int)
	globalData.tombstones = cache.New(cache.NoExpiration, 0)
	globalData.observers = nil
	globalData.republisherActive = false
	globalData.shutdownRequested = false

	// terminal offers never re-enter the directory
	for _, entity := range restored {
		switch entity.LocalState {
		case offer.LocalCanceled, offer.LocalClosed:
			globalData.log.Warnf("dropping restored terminal offer: %s", entity.ID)
			continue
		}
		oo := offer.FromEntity(entity, depository)
		globalData.index[oo.ID()] = len(globalData.offers)
		globalData.offers = append(globalData.offers, oo)
	}
	globalData.log.Infof("restored %d open offers", len(globalData.offers))

	globalData.handler = responder.New(transport, OfferLocalState)
	transport.SubscribeDecrypted(globalData.handler.Handle)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shut down the directory
func Finalise() error {
	globalData.Lock()

	if !globalData.initialised {
		globalData.Unlock()
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	processes := globalData.processes
	globalData.processes = nil
	globalData.republisherActive = false
	globalData.Unlock()

	processes.Stop()

	globalData.Lock()
	defer globalData.Unlock()

	globalData.log.Info("finished")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	return nil
}
