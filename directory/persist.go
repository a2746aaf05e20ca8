// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"github.com/bitmark-inc/offerd/offer"
)

// StoreEntities - the persistence snapshot of the directory
//
// the depository saves the whole directory as one unit, this is its
// source function
func StoreEntities() []offer.StoreEntity {
	globalData.RLock()
	defer globalData.RUnlock()

	entities := make([]offer.StoreEntity, 0, len(globalData.offers))
	for _, oo := range globalData.offers {
		entities = append(entities, oo.Entity())
	}
	return entities
}
