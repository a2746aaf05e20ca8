// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC over TLS control surface for the daemon
//
// exposes the offer directory operations to local tooling; the
// asynchronous directory callbacks are bridged to bounded waits at
// this layer only
package rpc
