// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - durable storage of the node's signing keypair
//
// the private key is AES encrypted with a pbkdf2-derived key when a
// passphrase is supplied, otherwise stored in clear for unattended
// daemons
package identity

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"io/ioutil"
	"os"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/pbkdf2"

	"github.com/bitmark-inc/offerd/fault"
	"github.com/bitmark-inc/offerd/sig"
)

const (
	saltSize   = 16
	iterations = 100000
	cipherSize = 32

	privateKeySize = ed25519.PrivateKeySize
)

// a message only the right private key can sign correctly
const checkMessage = "offerd identity check"

// layout of the keyfile
type keyFile struct {
	Algorithm  string `json:"algorithm"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
	Salt       string `json:"salt,omitempty"`
	Iterations int    `json:"iterations,omitempty"`
}

// Generate - create a fresh keypair and store it
//
// refuses to overwrite an existing keyfile
func Generate(filename string, passphrase string) (*sig.KeyPair, error) {
	_, err := os.Stat(filename)
	if nil == err {
		return nil, fault.KeyFileExists
	}

	keyPair, err := sig.GenerateKeyPair()
	if nil != err {
		return nil, err
	}

	err = Save(filename, keyPair, passphrase)
	if nil != err {
		return nil, err
	}
	return keyPair, nil
}

// Save - write the keypair to its file
func Save(filename string, keyPair *sig.KeyPair, passphrase string) error {

	record := keyFile{
		Algorithm: sig.KeyAlgorithm,
		PublicKey: hex.EncodeToString(keyPair.PublicKey),
	}

	if "" == passphrase {
		record.PrivateKey = hex.EncodeToString(keyPair.PrivateKey)
	} else {
		salt := make([]byte, saltSize)
		_, err := rand.Read(salt)
		if nil != err {
			return err
		}
		key := deriveKey(passphrase, salt, iterations)
		encrypted, err := encryptPrivateKey(keyPair.PrivateKey, key)
		if nil != err {
			return err
		}
		record.PrivateKey = hex.EncodeToString(encrypted)
		record.Salt = hex.EncodeToString(salt)
		record.Iterations = iterations
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if nil != err {
		return err
	}
	return ioutil.WriteFile(filename, data, 0600)
}

// Load - read a keypair back from its file
func Load(filename string, passphrase string) (*sig.KeyPair, error) {

	data, err := ioutil.ReadFile(filename)
	if nil != err {
		return nil, err
	}

	record := keyFile{}
	err = json.Unmarshal(data, &record)
	if nil != err {
		return nil, fault.InvalidKeyFile
	}
	if sig.KeyAlgorithm != record.Algorithm {
		return nil, fault.InvalidKeyFile
	}

	publicKey, err := hex.DecodeString(record.PublicKey)
	if nil != err || ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.InvalidKeyFile
	}

	privateKey, err := hex.DecodeString(record.PrivateKey)
	if nil != err {
		return nil, fault.InvalidKeyFile
	}

	if "" != record.Salt {
		salt, err := hex.DecodeString(record.Salt)
		if nil != err || saltSize != len(salt) {
			return nil, fault.InvalidKeyFile
		}
		key := deriveKey(passphrase, salt, record.Iterations)
		privateKey, err = decryptPrivateKey(privateKey, key)
		if nil != err {
			return nil, err
		}
	}

	if privateKeySize != len(privateKey) {
		return nil, fault.InvalidKeyFile
	}

	keyPair := &sig.KeyPair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}

	if !checkSignature(keyPair) {
		return nil, fault.WrongPassphrase
	}
	return keyPair, nil
}

func deriveKey(passphrase string, salt []byte, iter int) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, iter, cipherSize, sha512.New)
}

func encryptPrivateKey(plaintext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if nil != err {
		return nil, err
	}

	if privateKeySize != len(plaintext) {
		return nil, fault.InvalidPrivateKey
	}

	ciphertext := make([]byte, aes.BlockSize+privateKeySize)
	iv := ciphertext[:aes.BlockSize]
	_, err = io.ReadFull(rand.Reader, iv)
	if nil != err {
		return nil, err
	}
	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(ciphertext[aes.BlockSize:], plaintext)

	return ciphertext, nil
}

func decryptPrivateKey(ciphertext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if nil != err {
		return nil, err
	}

	if aes.BlockSize+privateKeySize != len(ciphertext) {
		return nil, fault.InvalidKeyFile
	}

	iv := ciphertext[:aes.BlockSize]
	plaintext := make([]byte, privateKeySize)
	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(plaintext, ciphertext[aes.BlockSize:])

	return plaintext, nil
}

func checkSignature(keyPair *sig.KeyPair) bool {
	signature, err := sig.Sign(keyPair.PrivateKey, []byte(checkMessage))
	if nil != err {
		return false
	}
	ok, err := sig.Verify(keyPair.PublicKey, []byte(checkMessage), signature)
	return nil == err && ok
}
