// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse the Lua configuration file
//
// the file is executed as a Lua program and must return a table; the
// table is mapped onto the Configuration structure, relative paths are
// resolved against the data directory
package configuration
