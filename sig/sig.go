// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sig

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/offerd/fault"
)

// KeyAlgorithm - the fixed signing algorithm
const KeyAlgorithm = "ed25519"

// key and signature sizes in bytes
const (
	PublicKeySize  = ed25519.PublicKeySize
	PrivateKeySize = ed25519.PrivateKeySize
	SignatureSize  = ed25519.SignatureSize
)

// KeyPair - a node identity for storage and message signing
//
// immutable after creation
type KeyPair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// GenerateKeyPair - create a fresh key pair
//
// an error here is fatal for the caller: without a key pair the node
// has no identity and cannot join the network
func GenerateKeyPair() (*KeyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, fault.KeyGenerationFailed
	}
	return &KeyPair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}, nil
}

// String - abbreviated Base58 public key for logging
func (k *KeyPair) String() string {
	return base58.Encode(k.PublicKey)
}

// Sign - sign arbitrary data
func Sign(privateKey []byte, data []byte) ([]byte, error) {
	if PrivateKeySize != len(privateKey) {
		return nil, fault.InvalidPrivateKey
	}
	return ed25519.Sign(ed25519.PrivateKey(privateKey), data), nil
}

// SignMessage - sign a UTF-8 text message
//
// returns the signature as Base64 text
func SignMessage(privateKey []byte, message string) (string, error) {
	signature, err := Sign(privateKey, []byte(message))
	if nil != err {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

// Verify - check a signature over arbitrary data
//
// a structurally invalid or mismatched signature yields false with no
// error; an error is only returned when verification cannot be
// attempted at all
func Verify(publicKey []byte, data []byte, signature []byte) (bool, error) {
	if PublicKeySize != len(publicKey) {
		return false, fault.InvalidPublicKey
	}
	if SignatureSize != len(signature) {
		return false, nil
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), data, signature), nil
}

// VerifyMessage - check a Base64 signature over a UTF-8 text message
func VerifyMessage(publicKey []byte, message string, signature string) (bool, error) {
	raw, err := base64.StdEncoding.DecodeString(signature)
	if nil != err {
		return false, fault.InvalidSignatureBase64
	}
	return Verify(publicKey, []byte(message), raw)
}
