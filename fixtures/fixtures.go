// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"fmt"
	"os"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// test key material, 32 byte keys as the transport uses
var (
	PublicKey1 []byte
	PublicKey2 []byte
	PublicKey3 []byte
)

func init() {
	tmp, _, _ := zmq.NewCurveKeypair()
	PublicKey1 = []byte(zmq.Z85decode(tmp))

	tmp, _, _ = zmq.NewCurveKeypair()
	PublicKey2 = []byte(zmq.Z85decode(tmp))

	tmp, _, _ = zmq.NewCurveKeypair()
	PublicKey3 = []byte(zmq.Z85decode(tmp))
}

// SetupTestLogger - logging setup for a test run
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove test files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
