// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store - LevelDB backed storage pools
//
// One database holds every pool, each pool occupies a single byte
// key prefix.  The open offer directory is saved as one record so
// that the whole collection is persisted as a unit.
package store
