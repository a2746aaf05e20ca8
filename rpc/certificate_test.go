// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerd/fixtures"
)

func TestGetCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "rpc-certificate-test")
	require.Nil(t, err, "tempdir failed")
	defer os.RemoveAll(dir)

	certificateFilename := filepath.Join(dir, "rpc.crt")
	keyFilename := filepath.Join(dir, "rpc.key")

	validUntil := time.Now().Add(time.Hour)
	cert, key, err := certgen.NewTLSCertPair("testing", validUntil, false, nil)
	require.Nil(t, err, "certificate generation failed")

	err = ioutil.WriteFile(certificateFilename, cert, 0666)
	require.Nil(t, err, "write certificate failed")
	err = ioutil.WriteFile(keyFilename, key, 0600)
	require.Nil(t, err, "write key failed")

	tlsConfiguration, fingerprint, err := getCertificate(logger.New("test"), certificateFilename, keyFilename)
	require.Nil(t, err, "certificate load failed")
	require.NotNil(t, tlsConfiguration, "no tls configuration")
	assert.Equal(t, 1, len(tlsConfiguration.Certificates), "wrong certificate count")
	assert.NotEqual(t, [32]byte{}, fingerprint, "empty fingerprint")
}

func TestGetCertificateMissingFile(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := getCertificate(logger.New("test"), "no-such.crt", "no-such.key")
	assert.NotNil(t, err, "missing certificate accepted")
}
