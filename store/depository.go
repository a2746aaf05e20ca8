// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerd/offer"
)

// the one record holding the whole open offer directory
var directoryKey = []byte("open-offers")

// OpenOfferDepository - durable storage for the local directory
//
// implements offer.Depository: QueueForSave marks the directory dirty
// and a background goroutine writes the snapshot, so it is safe to
// queue a save while holding the directory lock
type OpenOfferDepository struct {
	sync.Mutex // guards poke against Stop

	log     *logger.L
	source  func() []offer.StoreEntity
	poke    chan struct{}
	done    chan struct{}
	stopped bool
}

// NewOpenOfferDepository - create and start the saver
//
// source must return a consistent snapshot of the directory
func NewOpenOfferDepository(source func() []offer.StoreEntity) *OpenOfferDepository {
	d := &OpenOfferDepository{
		log:    logger.New("depository"),
		source: source,
		poke:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *OpenOfferDepository) run() {
	for range d.poke {
		d.Flush()
	}
	close(d.done)
}

// QueueForSave - request a save of the current directory
//
// coalesces with an already pending save, never blocks; a late call
// after Stop is a silent no-op so offer confirmations arriving during
// shutdown cannot panic the exit path
func (d *OpenOfferDepository) QueueForSave() {
	d.Lock()
	defer d.Unlock()

	if d.stopped {
		return
	}
	select {
	case d.poke <- struct{}{}:
	default:
	}
}

// Flush - write the directory snapshot now
func (d *OpenOfferDepository) Flush() {
	entities := d.source()
	data, err := json.Marshal(entities)
	if nil != err {
		d.log.Errorf("marshal directory error: %s", err)
		return
	}
	err = Pool.OpenOffers.Put(directoryKey, data)
	if nil != err {
		d.log.Errorf("save directory error: %s", err)
		return
	}
	d.log.Debugf("saved %d open offers", len(entities))
}

// Restore - read back the saved directory
//
// a missing record is an empty directory, not an error
func (d *OpenOfferDepository) Restore() ([]offer.StoreEntity, error) {
	data, err := Pool.OpenOffers.Get(directoryKey)
	if nil != err {
		return nil, err
	}
	if nil == data {
		return nil, nil
	}

	entities := make([]offer.StoreEntity, 0, 4)
	err = json.Unmarshal(data, &entities)
	if nil != err {
		return nil, err
	}
	return entities, nil
}

// Stop - flush pending work and stop the saver
//
// idempotent
func (d *OpenOfferDepository) Stop() {
	d.Lock()
	if d.stopped {
		d.Unlock()
		return
	}
	d.stopped = true
	close(d.poke)
	d.Unlock()

	<-d.done
}
