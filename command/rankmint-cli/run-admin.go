// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/rankmint/rankmintd/command/rankmint-cli/rpccalls"
)

func runSetSale(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller := c.String("caller")
	if "" == caller {
		return fmt.Errorf("missing caller address")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetSale(&rpccalls.SetSaleData{
		Caller: caller,
		Active: c.Bool("active"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSetFee(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller := c.String("caller")
	if "" == caller {
		return fmt.Errorf("missing caller address")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetFee(&rpccalls.SetFeeData{
		Caller:     caller,
		FeeWaived:  c.Bool("waived"),
		FeeDivisor: c.Uint64("divisor"),
		MinimumFee: c.Uint64("minimum"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller := c.String("caller")
	payout := c.String("payout")
	if "" == caller || "" == payout {
		return fmt.Errorf("missing caller or payout address")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Register(&rpccalls.RegisterData{
		Caller:         caller,
		RoyaltyPercent: c.Uint64("royalty"),
		SupplyCap:      c.Int("cap"),
		MinimumBalance: c.Uint64("minimum"),
		Payout:         payout,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runCredit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller := c.String("caller")
	owner := c.String("owner")
	if "" == caller || "" == owner {
		return fmt.Errorf("missing caller or owner address")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Credit(&rpccalls.CreditData{
		Caller: caller,
		Owner:  owner,
		Amount: c.Uint64("amount"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
