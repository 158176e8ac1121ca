// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/rankmint/rankmintd/address"
	"github.com/rankmint/rankmintd/allowlist"
	"github.com/rankmint/rankmintd/configuration"
	"github.com/rankmint/rankmintd/issuer"
	"github.com/rankmint/rankmintd/ledger"
	"github.com/rankmint/rankmintd/ownership"
	"github.com/rankmint/rankmintd/payment"
	"github.com/rankmint/rankmintd/rpc"
	"github.com/rankmint/rankmintd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// base name of the database below the data directory; storage
// appends the ".leveldb" suffix
const databaseName = "rankmint"

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

	// these commands do not require the configuration file
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

	// these commands require the configuration
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

	administrator := address.Address(theConfiguration.Administrator)
	isAdministrator := func(caller address.Address) bool {
		return caller == administrator
	}

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Issuance", theConfiguration.Issuance)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(filepath.Join(theConfiguration.DataDirectory, databaseName))
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	ownership.Initialise(storage.Pool.Owners, storage.Pool.Identities)
	payment.Initialise(storage.Pool.Balances, storage.Pool.Payouts)
	pay := payment.Get()

	// fee split destinations
	feeLedger := ledger.New(
		address.Address(theConfiguration.Team),
		address.Address(theConfiguration.Donation),
	)

	// allowlist entries from the configuration use the daemon's own
	// balance view as their eligibility oracle
	registry := allowlist.New()
	for i, entry := range theConfiguration.Allowlist {
		err = registry.Register(
			entry.RoyaltyPercent,
			entry.SupplyCap,
			entry.MinimumBalance,
			pay,
			address.Address(entry.Payout),
		)
		if nil != err {
			log.Criticalf("allowlist entry: %d register error: %s", i, err)
			exitwithstatus.Message("allowlist entry: %d register error: %s", i, err)
		}
	}

	// start the issuance state machine
	// replays the wealth journal so ranks survive a restart
	log.Info("initialise issuer")
	err = issuer.Initialise(
		issuer.Settings{
			PublicSaleActive: theConfiguration.Issuance.PublicSaleActive,
			FeeWaived:        theConfiguration.Issuance.FeeWaived,
			FeeDivisor:       theConfiguration.Issuance.FeeDivisor,
			MinimumFee:       theConfiguration.Issuance.MinimumFee,
		},
		issuer.Handles{
			Ownership:       ownership.Get(),
			Wealth:          pay,
			Transfer:        pay.Transfer,
			Registry:        registry,
			Ledger:          feeLedger,
			IndexJournal:    storage.Pool.Wealth,
			IsAdministrator: isAdministrator,
		},
	)
	if nil != err {
		log.Criticalf("issuer initialise error: %s", err)
		exitwithstatus.Message("issuer initialise error: %s", err)
	}
	defer issuer.Finalise()

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, version, isAdministrator)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

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
}
