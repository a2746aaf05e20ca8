// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package offer - trade offer records and their lifecycle states
//
// An Offer is immutable by identity; only its shared network state
// changes.  An OpenOffer wraps an Offer this node originated and is
// still responsible for, adding the local lifecycle used by the
// directory.  Neither type contains any locking: all state changes
// are serialised by the owning directory.
package offer
