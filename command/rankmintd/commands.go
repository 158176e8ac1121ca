// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/rankmint/rankmintd/configuration"
)

// setup command handler
//
// commands that run before the configuration file is read
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command] arguments]\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                             (h)      - display this message\n\n")
		fmt.Printf("  version                          (v)      - display version\n\n")
		fmt.Printf("  start                                     - just run the daemon (default)\n\n")
		fmt.Printf("  show-configuration               (config) - display the parsed configuration\n\n")
		exitwithstatus.Exit(1)

	default:
		// not a setup command
		return false
	}

	return true
}

// configuration command handler
//
// commands that inspect the parsed configuration
func processConfigCommand(arguments []string, theConfiguration *configuration.Configuration) bool {

	switch arguments[0] {
	case "start":
		return false

	case "show-configuration", "config":
		b, err := json.MarshalIndent(theConfiguration, "", "  ")
		if nil != err {
			exitwithstatus.Message("configuration marshal error: %s", err)
		}
		fmt.Printf("%s\n", b)

	default:
		exitwithstatus.Message("unknown command: %q", arguments[0])
	}

	return true
}
