// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerd/fault"
)

// exported storage pools
type pools struct {
	OpenOffers   *PoolHandle `prefix:"O"`
	ClosedTrades *PoolHandle `prefix:"C"`
}

// Pool - the set of exported pools
var Pool pools

// holds the database handle
var globalData struct {
	sync.RWMutex
	log      *logger.L
	database *leveldb.DB

	// set once during initialise
	initialised bool
}

// Initialise - open the database
//
// this must be called before any pool is accessed
func Initialise(database string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("store")
	globalData.log.Info("starting…")

	db, err := leveldb.OpenFile(database, nil)
	if nil != err {
		globalData.log.Criticalf("cannot open database: %q  error: %s", database, err)
		return err
	}

	globalData.database = db
	Pool.OpenOffers = &PoolHandle{prefix: 'O', database: db}
	Pool.ClosedTrades = &PoolHandle{prefix: 'C', database: db}

	globalData.initialised = true
	return nil
}

// Finalise - close the database
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	Pool.OpenOffers = nil
	Pool.ClosedTrades = nil

	globalData.database.Close()
	globalData.database = nil

	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.initialised = false

	return nil
}
