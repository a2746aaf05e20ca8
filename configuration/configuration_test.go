// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/offerd/configuration"
	"github.com/bitmark-inc/offerd/offer"
)

const configText = `
local M = {}

M.data_directory = "."
M.pidfile = "offerd.pid"

M.database = {
    directory = "data",
    name = "offerd.leveldb",
}

M.identity = {
    key_file = "identity.json",
}

M.offers = {
    ttl = "15m",
}

M.client_rpc = {
    maximum_connections = 50,
    listen = {
        "127.0.0.1:2230",
    },
    certificate = "rpc.crt",
    private_key = "rpc.key",
}

M.logging = {
    size = 1048576,
    count = 20,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func writeConfig(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration-test")
	require.Nil(t, err, "tempdir failed")
	filename := filepath.Join(dir, "offerd.conf")
	err = ioutil.WriteFile(filename, []byte(text), 0600)
	require.Nil(t, err, "write failed")
	return filename, func() {
		_ = os.RemoveAll(dir)
	}
}

func TestGetConfiguration(t *testing.T) {
	filename, cleanup := writeConfig(t, configText)
	defer cleanup()

	options, err := configuration.GetConfiguration(filename)
	require.Nil(t, err, "configuration failed")

	dir := filepath.Dir(filename)

	assert.Equal(t, filepath.Join(dir, "offerd.pid"), options.PidFile, "pid file not expanded")
	assert.Equal(t, filepath.Join(dir, "data"), options.Database.Directory, "database directory not expanded")
	assert.Equal(t, filepath.Join(dir, "data", "offerd.leveldb"), options.Database.Name, "database name not expanded")
	assert.Equal(t, filepath.Join(dir, "identity.json"), options.Identity.KeyFile, "key file not expanded")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), options.ClientRPC.Certificate, "certificate not expanded")
	assert.Equal(t, uint64(50), options.ClientRPC.MaximumConnections, "wrong connection limit")
	assert.Equal(t, []string{"127.0.0.1:2230"}, options.ClientRPC.Listen, "wrong listen list")
	assert.Equal(t, 15*time.Minute, options.OfferTTL(), "wrong offer ttl")
	assert.Equal(t, 20, options.Logging.Count, "wrong log count")

	// directories created
	info, err := os.Stat(options.Database.Directory)
	require.Nil(t, err, "database directory missing")
	assert.True(t, info.IsDir(), "database directory is not a directory")
}

func TestDefaultTTL(t *testing.T) {
	filename, cleanup := writeConfig(t, `
local M = {}
M.data_directory = "."
return M
`)
	defer cleanup()

	options, err := configuration.GetConfiguration(filename)
	require.Nil(t, err, "configuration failed")
	assert.Equal(t, offer.DefaultTTL, options.OfferTTL(), "wrong default ttl")
}

func TestInvalidTTL(t *testing.T) {
	filename, cleanup := writeConfig(t, `
local M = {}
M.data_directory = "."
M.offers = { ttl = "soon" }
return M
`)
	defer cleanup()

	_, err := configuration.GetConfiguration(filename)
	assert.NotNil(t, err, "invalid ttl accepted")
}

func TestMissingDataDirectory(t *testing.T) {
	filename, cleanup := writeConfig(t, `
local M = {}
M.data_directory = ""
return M
`)
	defer cleanup()

	_, err := configuration.GetConfiguration(filename)
	assert.NotNil(t, err, "blank data directory accepted")
}
