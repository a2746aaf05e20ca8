// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/offerd/fault"
	"github.com/bitmark-inc/offerd/identity"
)

func keyFilename(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "identity-test")
	require.Nil(t, err, "tempdir failed")
	return filepath.Join(dir, "identity.json"), func() {
		_ = os.RemoveAll(dir)
	}
}

func TestGenerateAndLoad(t *testing.T) {
	filename, cleanup := keyFilename(t)
	defer cleanup()

	keyPair, err := identity.Generate(filename, "")
	require.Nil(t, err, "generate failed")

	loaded, err := identity.Load(filename, "")
	require.Nil(t, err, "load failed")
	assert.Equal(t, keyPair.PublicKey, loaded.PublicKey, "public key changed")
	assert.Equal(t, keyPair.PrivateKey, loaded.PrivateKey, "private key changed")
}

func TestGenerateRefusesOverwrite(t *testing.T) {
	filename, cleanup := keyFilename(t)
	defer cleanup()

	_, err := identity.Generate(filename, "")
	require.Nil(t, err, "generate failed")

	_, err = identity.Generate(filename, "")
	assert.Equal(t, fault.KeyFileExists, err, "wrong error")
}

func TestEncryptedRoundTrip(t *testing.T) {
	filename, cleanup := keyFilename(t)
	defer cleanup()

	keyPair, err := identity.Generate(filename, "correct horse")
	require.Nil(t, err, "generate failed")

	// ciphertext on disk, never the raw key
	data, err := ioutil.ReadFile(filename)
	require.Nil(t, err, "read failed")
	assert.NotContains(t, string(data), string(keyPair.PrivateKey), "private key stored in clear")

	loaded, err := identity.Load(filename, "correct horse")
	require.Nil(t, err, "load failed")
	assert.Equal(t, keyPair.PrivateKey, loaded.PrivateKey, "private key changed")
}

func TestWrongPassphrase(t *testing.T) {
	filename, cleanup := keyFilename(t)
	defer cleanup()

	_, err := identity.Generate(filename, "correct horse")
	require.Nil(t, err, "generate failed")

	_, err = identity.Load(filename, "battery staple")
	assert.Equal(t, fault.WrongPassphrase, err, "wrong error")
}

func TestInvalidKeyFile(t *testing.T) {
	filename, cleanup := keyFilename(t)
	defer cleanup()

	err := ioutil.WriteFile(filename, []byte("not json"), 0600)
	require.Nil(t, err, "write failed")

	_, err = identity.Load(filename, "")
	assert.Equal(t, fault.InvalidKeyFile, err, "wrong error")
}
