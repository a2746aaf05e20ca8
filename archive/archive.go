// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package archive - the closed trade archive
//
// Canceled and closed open offers end up here, keyed by offer id so
// a repeated archive of the same offer cannot create a duplicate.
package archive

import (
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerd/fault"
	"github.com/bitmark-inc/offerd/network"
	"github.com/bitmark-inc/offerd/offer"
	"github.com/bitmark-inc/offerd/store"
)

// globals
var globalData struct {
	sync.RWMutex
	log *logger.L

	// set once during initialise
	initialised bool
}

// Initialise - set up the archive
//
// the store must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("archive")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - shut down the archive
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.initialised = false
	return nil
}

// Add - append a finished open offer to the archive
func Add(oo *offer.OpenOffer) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	entity := oo.Entity()
	data, err := json.Marshal(entity)
	if nil != err {
		return err
	}

	err = store.Pool.ClosedTrades.Put([]byte(entity.ID), data)
	if nil != err {
		globalData.log.Errorf("archive offer: %s  error: %s", entity.ID, err)
		return err
	}

	globalData.log.Infof("archived offer: %s  state: %s", entity.ID, entity.LocalState)
	return nil
}

// Count - number of archived trades
func Count() (int, error) {
	items, err := store.Pool.ClosedTrades.Items()
	if nil != err {
		return 0, err
	}
	return len(items), nil
}

// Fetch - all archived trades
func Fetch() ([]offer.StoreEntity, error) {
	items, err := store.Pool.ClosedTrades.Items()
	if nil != err {
		return nil, err
	}

	entities := make([]offer.StoreEntity, 0, len(items))
	for _, item := range items {
		entity := offer.StoreEntity{}
		err = json.Unmarshal(item.Value, &entity)
		if nil != err {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// adapter so the directory can take the archive as a capability
type archiver struct{}

// Global - the archive as a network.Archiver
func Global() network.Archiver {
	return archiver{}
}

func (archiver) Add(oo *offer.OpenOffer) error {
	return Add(oo)
}
