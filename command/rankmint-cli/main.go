// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "rankmint-cli"
	app.Usage = "connect to a rankmintd to issue and inspect ranked identities"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2150",
			Usage: " rankmintd host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "issue",
			Usage:     "request the next identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*address receiving the identity `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "paid, p",
					Value: 0,
					Usage: " amount attached to the call `AMOUNT`",
				},
			},
			Action: runIssue,
		},
		{
			Name:      "claim",
			Usage:     "pay out accrued royalties",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*address claiming its royalties `ADDRESS`",
				},
			},
			Action: runClaim,
		},
		{
			Name:      "wealth",
			Usage:     "current host balance of an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*address to read `ADDRESS`",
				},
			},
			Action: runWealth,
		},
		{
			Name:      "identity",
			Usage:     "fetch an issued identity record",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "identifier, i",
					Value: 0,
					Usage: "+identifier to fetch `NUMBER`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "+address holding the identity `ADDRESS`",
				},
			},
			Action: runIdentity,
		},
		{
			Name:   "info",
			Usage:  "display the rankmintd status",
			Action: runInfo,
		},
		{
			Name:      "payouts",
			Usage:     "list a page of the completed payout journal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first sequence number `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 10,
					Usage: " number of records `NUMBER`",
				},
			},
			Action: runPayouts,
		},
		{
			Name:      "setsale",
			Usage:     "open or close the public sale (administrator)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, a",
					Value: "",
					Usage: "*administrator address `ADDRESS`",
				},
				cli.BoolFlag{
					Name:  "active",
					Usage: " open the sale",
				},
			},
			Action: runSetSale,
		},
		{
			Name:      "setfee",
			Usage:     "change the fee parameters (administrator)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, a",
					Value: "",
					Usage: "*administrator address `ADDRESS`",
				},
				cli.BoolFlag{
					Name:  "waived",
					Usage: " waive all fees",
				},
				cli.Uint64Flag{
					Name:  "divisor, d",
					Value: 100,
					Usage: " fee divisor `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "minimum, m",
					Value: 0,
					Usage: " minimum fee `AMOUNT`",
				},
			},
			Action: runSetFee,
		},
		{
			Name:      "register",
			Usage:     "add an allowlist entry (administrator)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, a",
					Value: "",
					Usage: "*administrator address `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "royalty, r",
					Value: 0,
					Usage: "*royalty percentage `NUMBER`",
				},
				cli.IntFlag{
					Name:  "cap, s",
					Value: 0,
					Usage: "*free supply cap `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "minimum, m",
					Value: 0,
					Usage: " minimum qualifying balance `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "payout, o",
					Value: "",
					Usage: "*royalty payout address `ADDRESS`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "credit",
			Usage:     "credit a host balance (administrator)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, a",
					Value: "",
					Usage: "*administrator address `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*address to credit `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "amount, m",
					Value: 0,
					Usage: "*amount to credit `AMOUNT`",
				},
			},
			Action: runCredit,
		},
		{
			Name:   "version",
			Usage:  "display rankmint-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       app.ErrWriter,
			w:       app.Writer,
		}
		app.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
