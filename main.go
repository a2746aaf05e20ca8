// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offerd/archive"
	"github.com/bitmark-inc/offerd/configuration"
	"github.com/bitmark-inc/offerd/directory"
	"github.com/bitmark-inc/offerd/identity"
	"github.com/bitmark-inc/offerd/loopback"
	"github.com/bitmark-inc/offerd/rpc"
	"github.com/bitmark-inc/offerd/store"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Infof("offer ttl: %s", theConfiguration.OfferTTL())
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// the node's signing identity, generated on first run
	keyPair, err := identity.Load(theConfiguration.Identity.KeyFile, theConfiguration.Identity.Passphrase)
	if os.IsNotExist(err) {
		log.Warnf("identity: %q missing, generating", theConfiguration.Identity.KeyFile)
		keyPair, err = identity.Generate(theConfiguration.Identity.KeyFile, theConfiguration.Identity.Passphrase)
	}
	if nil != err {
		log.Criticalf("identity error: %s", err)
		exitwithstatus.Message("identity error: %s", err)
	}
	log.Infof("identity: %s", keyPair)

	// start the data storage
	log.Info("initialise store")
	err = store.Initialise(theConfiguration.Database.Name)
	if nil != err {
		log.Criticalf("store initialise error: %s", err)
		exitwithstatus.Message("store initialise error: %s", err)
	}
	defer store.Finalise()

	// start the closed trade archive
	err = archive.Initialise()
	if nil != err {
		log.Criticalf("archive initialise error: %s", err)
		exitwithstatus.Message("archive initialise error: %s", err)
	}
	defer archive.Finalise()

	// durable storage for the open offer directory
	depository := store.NewOpenOfferDepository(directory.StoreEntities)
	defer depository.Stop()

	restored, err := depository.Restore()
	if nil != err {
		log.Criticalf("restore error: %s", err)
		exitwithstatus.Message("restore error: %s", err)
	}
	log.Infof("restored %d offers from store", len(restored))

	// collaborators: the embedding session wires the real offer book,
	// transport and placement protocol; standalone runs get the
	// in-process loopback set
	offerBook := loopback.NewOfferBook()
	transport := loopback.NewTransport()
	placer := loopback.NewPlacer()

	// start the offer directory
	log.Info("initialise directory")
	err = directory.Initialise(
		keyPair,
		theConfiguration.OfferTTL(),
		offerBook,
		transport,
		placer,
		archive.Global(),
		depository,
		restored,
	)
	if nil != err {
		log.Criticalf("directory initialise error: %s", err)
		exitwithstatus.Message("directory initialise error: %s", err)
	}
	defer directory.Finalise()

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// everything is up: begin maintaining the network copies
	err = directory.Activate()
	if nil != err {
		log.Criticalf("directory activate error: %s", err)
		exitwithstatus.Message("directory activate error: %s", err)
	}
	transport.CompleteBootstrap()

	// wait for termination and give the directory its grace period to
	// withdraw the network copies; shutdown happens exactly once, here
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)

	withdrawn := make(chan struct{})
	directory.Shutdown(func() { close(withdrawn) })
	<-withdrawn

	log.Info("shutting down…")
	log.Flush()
}
