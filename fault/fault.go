// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	CryptoError   GenericError
	ExistsError   GenericError
	InvalidError  GenericError
	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised     = ProcessError("already initialised")
	CertificateFileExists  = ExistsError("certificate file already exists")
	InvalidCount           = InvalidError("invalid count")
	InvalidKeyFile         = InvalidError("invalid key file")
	InvalidOfferAmount     = InvalidError("offer amount is invalid")
	InvalidOfferCurrency   = InvalidError("offer currency is invalid")
	InvalidOfferDirection  = InvalidError("offer direction is invalid")
	InvalidOfferTTL        = InvalidError("offer time to live is invalid")
	InvalidPrivateKey      = CryptoError("invalid private key")
	InvalidPublicKey       = CryptoError("invalid public key")
	InvalidSignatureBase64 = CryptoError("invalid base64 signature encoding")
	KeyFileExists          = ExistsError("key file already exists")
	KeyGenerationFailed    = CryptoError("key generation failed")
	MissingOfferIdentifier = InvalidError("offer identifier is required")
	MissingOwnerPublicKey  = InvalidError("offer owner public key is required")
	MissingParameters      = InvalidError("missing parameters")
	NotInitialised         = ProcessError("not initialised")
	OfferAlreadyOpen       = ExistsError("offer is already open")
	OfferAlreadyRemoved    = ExistsError("offer was already removed")
	OfferNotFound          = NotFoundError("offer not found in local directory")
	RateLimiting           = InvalidError("rate limiting")
	RequestTimedOut        = ProcessError("request timed out")
	ShutdownRequested      = ProcessError("shutdown already requested")
	TransportNotConfigured = ProcessError("transport is not configured")
	WrongPassphrase        = CryptoError("wrong passphrase")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CryptoError) Error() string   { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrCrypto - detect if the error is the cryptographic fault class
func IsErrCrypto(e error) bool {
	_, ok := e.(CryptoError)
	return ok
}

// IsErrNotFound - detect if the error is the not-found fault class
//
// these are warning level results, callers normally have a
// best-effort fallback action instead of a hard failure
func IsErrNotFound(e error) bool {
	_, ok := e.(NotFoundError)
	return ok
}
