// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package directory - the directory of locally-originated open offers
//
// owns every offer this node has placed into the shared offer book and
// keeps the network copies alive by periodic re-announcement until the
// offer is canceled, consumed by a trade, or the node shuts down
//
// locking discipline: every mutation of globalData happens under the
// write lock, reads take the read lock; callbacks from the offer book
// and placer re-acquire the lock themselves and must not be invoked
// with it held; the depository only ever receives an asynchronous
// QueueForSave so persisting is safe from inside the locked sections
package directory
