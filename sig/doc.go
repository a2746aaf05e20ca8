// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sig - the signature primitive
//
// One fixed algorithm (Ed25519) is used for both purposes of the node
// key pair: signing records flooded into the shared network storage
// and signing direct peer messages.  The size is pinned for
// compatibility with the legacy storage signature scheme, so no
// algorithm parameter appears anywhere in the interface.
//
// A failed verification and an impossible verification are different
// outcomes: the boolean result reports a signature mismatch, an error
// of class fault.CryptoError reports that verification could not even
// be attempted (bad key material, undecodable signature text).
// Callers must branch on the boolean and handle the error separately.
package sig
