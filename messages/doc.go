// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messages - direct peer message records
//
// These mirror the record layout of the availability protocol; the
// transport layer owns encryption, signing and delivery.  A message
// handed to a subscriber has already been decrypted and has passed
// the transport's basic signature check.
package messages
