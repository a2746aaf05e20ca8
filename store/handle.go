// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/offerd/fault"
)

// PoolHandle - access to one key prefix of the database
type PoolHandle struct {
	prefix   byte
	database *leveldb.DB
}

// a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value pair
func (p *PoolHandle) Put(key []byte, value []byte) error {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil == p.database {
		return fault.NotInitialised
	}
	return p.database.Put(p.prefixKey(key), value, nil)
}

// Delete - remove a key
func (p *PoolHandle) Delete(key []byte) error {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil == p.database {
		return fault.NotInitialised
	}
	return p.database.Delete(p.prefixKey(key), nil)
}

// Get - read the value for a key
//
// returns nil with no error if the record is not present
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil == p.database {
		return nil, fault.NotInitialised
	}
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil == p.database {
		return false, fault.NotInitialised
	}
	return p.database.Has(p.prefixKey(key), nil)
}

// Items - fetch all records of the pool
//
// keys are returned without their prefix byte
func (p *PoolHandle) Items() ([]Element, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil == p.database {
		return nil, fault.NotInitialised
	}

	items := make([]Element, 0, 16)
	iterator := p.database.NewIterator(ldb_util.BytesPrefix([]byte{p.prefix}), nil)
	for iterator.Next() {
		key := make([]byte, len(iterator.Key())-1)
		copy(key, iterator.Key()[1:])
		value := make([]byte, len(iterator.Value()))
		copy(value, iterator.Value())
		items = append(items, Element{Key: key, Value: value})
	}
	iterator.Release()
	return items, iterator.Error()
}
