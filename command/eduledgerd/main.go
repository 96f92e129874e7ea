// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/admission"
	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/credential"
	"github.com/educhain-vn/eduledgerd/did"
	"github.com/educhain-vn/eduledgerd/escrow"
	"github.com/educhain-vn/eduledgerd/market"
	"github.com/educhain-vn/eduledgerd/mode"
	"github.com/educhain-vn/eduledgerd/research"
	"github.com/educhain-vn/eduledgerd/rpc"
	"github.com/educhain-vn/eduledgerd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

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

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
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
	log.Debugf("theConfiguration: %v", theConfiguration)

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

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// start a profiling http server
	// this uses the default builtin HTTP handler
	// and is not associated with the normal client RPC server
	if "" != theConfiguration.ProfileHTTP {
		go func() {
			log.Warnf("profile listener on: %s", theConfiguration.ProfileHTTP)
			err := http.ListenAndServe(theConfiguration.ProfileHTTP, nil)
			exitwithstatus.Message("profile error: %s", err)
		}()
	}

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// attach the pools to the transition layers
	log.Info("initialise ledgers")
	audit.Initialise(storage.Pool.Transactions)
	credential.Initialise(storage.Pool.Credentials, storage.Pool.Tokens, storage.Pool.Schools)
	admission.Initialise(storage.Pool.Seats, storage.Pool.Scores, storage.Pool.Results)
	research.Initialise(storage.Pool.HashRecords, storage.Pool.Bounties)
	market.Initialise(storage.Pool.Courses, storage.Pool.Certificates, storage.Pool.Degrees, storage.Pool.Progressions, storage.Pool.Requirements)
	escrow.Initialise(storage.Pool.Escrows)
	did.Initialise(storage.Pool.DIDDocuments, storage.Pool.DIDHashes)

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theConfiguration) {
		return
	}

	// the certificate and key are stored as file names in the
	// configuration; the listener wants the PEM content
	certificatePEM, err := ioutil.ReadFile(theConfiguration.ClientRPC.Certificate)
	if nil != err {
		log.Criticalf("certificate read error: %s", err)
		exitwithstatus.Message("certificate: %q read error: %s", theConfiguration.ClientRPC.Certificate, err)
	}
	privateKeyPEM, err := ioutil.ReadFile(theConfiguration.ClientRPC.PrivateKey)
	if nil != err {
		log.Criticalf("private key read error: %s", err)
		exitwithstatus.Message("private key: %q read error: %s", theConfiguration.ClientRPC.PrivateKey, err)
	}
	theConfiguration.ClientRPC.Certificate = string(certificatePEM)
	theConfiguration.ClientRPC.PrivateKey = string(privateKeyPEM)

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// ledgers are loaded so switch to normal operation
	mode.Set(mode.Normal)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}
