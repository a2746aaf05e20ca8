// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"io/ioutil"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerd/counter"
	"github.com/bitmark-inc/offerd/fault"
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []net.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// current connection count
var connectionCount counter.Counter

// Initialise - start serving
func Initialise(configuration *RPCConfiguration, version string) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if 0 == len(configuration.Listen) {
		log.Error("missing rpc listen")
		return fault.MissingParameters
	}
	if configuration.MaximumConnections < 1 {
		log.Errorf("invalid rpc maximum connection limit: %d", configuration.MaximumConnections)
		return fault.MissingParameters
	}

	tlsConfiguration, fingerprint, err := getCertificate(log, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("rpc: SHA3-256 fingerprint: %x", fingerprint)

	server := createServer(version)

	for _, listen := range configuration.Listen {
		log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen("tcp", listen, tlsConfiguration)
		if nil != err {
			log.Errorf("rpc server listen error: %s", err)
			return err
		}
		globalData.listeners = append(globalData.listeners, l)
		go doServeRPC(l, server, configuration.MaximumConnections, log)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop serving
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	for _, l := range globalData.listeners {
		_ = l.Close()
	}
	globalData.listeners = nil

	globalData.log.Info("finished")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	return nil
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			log.Errorf("rpc.server terminated: accept error: %s", err)
			break
		}
		if connectionCount.Increment() <= maximumConnections {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				connectionCount.Decrement()
			}()
		} else {
			connectionCount.Decrement()
			_ = conn.Close()
		}
	}
	_ = listen.Close()
	log.Error("RPC accept terminated")
}

func createServer(version string) *rpc.Server {
	server := rpc.NewServer()
	_ = server.Register(NewOffers(version))
	return server
}

// load the certificate pair and compute its fingerprint
//
// FreeBSD: openssl x509 -outform DER -in offerd-rpc.crt | sha3sum -a 256
func getCertificate(log *logger.L, certificateFilename string, keyFilename string) (*tls.Config, [32]byte, error) {
	var fingerprint [32]byte

	certificatePEM, err := ioutil.ReadFile(certificateFilename)
	if nil != err {
		log.Errorf("certificate: %q error: %s", certificateFilename, err)
		return nil, fingerprint, err
	}
	keyPEM, err := ioutil.ReadFile(keyFilename)
	if nil != err {
		log.Errorf("private key: %q error: %s", keyFilename, err)
		return nil, fingerprint, err
	}

	keyPair, err := tls.X509KeyPair(certificatePEM, keyPEM)
	if nil != err {
		log.Errorf("failed to load keypair: %s", err)
		return nil, fingerprint, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fingerprint = sha3.Sum256(keyPair.Certificate[0])

	return tlsConfiguration, fingerprint, nil
}
