// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package network - capabilities consumed from the P2P layer
//
// The transport, DHT storage, bootstrap and the placement protocol
// live outside this daemon; everything here is the interface surface
// the directory calls into or receives callbacks from.  Publish,
// remove and send never block: completion arrives through callbacks
// on the network layer's own threads.
package network
