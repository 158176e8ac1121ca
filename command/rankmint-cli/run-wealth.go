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

func runWealth(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner := c.String("owner")
	if "" == owner {
		return fmt.Errorf("missing owner address")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Wealth(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runIdentity(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identifier := c.Uint("identifier")
	owner := c.String("owner")
	if 0 == identifier && "" == owner {
		return fmt.Errorf("either identifier or owner is required")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	var response interface{}
	if 0 != identifier {
		response, err = client.Identity(uint32(identifier))
	} else {
		response, err = client.Owned(owner)
	}
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
